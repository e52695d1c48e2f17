package battleship

type ShotStats struct {
	Fired uint32 `json:"fired"`
	Hits  uint32 `json:"hits"`
}

// PeerState is everything a single peer owns. Handlers get it passed in
// explicitly; loading and saving it is the caller's job.
type PeerState struct {
	Room             *Room            `json:"room,omitempty"`
	Board            *Board           `json:"board,omitempty"`
	EnemyView        *EnemyView       `json:"enemy_view,omitempty"`
	SubscribedToHost *string          `json:"subscribed_to_host,omitempty"`
	LastReveal       *RevealInfo      `json:"last_reveal,omitempty"`
	LastNotification *string          `json:"last_notification,omitempty"`
	Social           SocialGraph      `json:"social"`
	RoomInvitations  []Invitation     `json:"room_invitations"`
	SentInvitations  []string         `json:"sent_invitations"`
	MatchmakingQueue MatchmakingQueue `json:"matchmaking_queue"`
	Shots            ShotStats        `json:"shots"`
}

func NewPeerState() *PeerState {
	return &PeerState{
		RoomInvitations: make([]Invitation, 0),
		SentInvitations: make([]string, 0),
	}
}

func (ps *PeerState) Notify(notification string) {
	ps.LastNotification = &notification
}

// Drops the room and everything that only lives as long as it.
func (ps *PeerState) ClearRoom() {
	ps.Room = nil
	ps.Board = nil
	ps.EnemyView = nil
	ps.SubscribedToHost = nil
	ps.LastReveal = nil
	ps.Shots = ShotStats{}
}

// Creates the enemy view the first time a room and an opponent are
// both known. An existing view is never replaced.
func (ps *PeerState) EnsureEnemyView(self string, size uint8) {
	if ps.EnemyView != nil || ps.Room == nil {
		return
	}
	if _, prs := ps.Room.Opponent(self); prs {
		ps.EnemyView = NewEnemyView(size)
	}
}

// Replaces the local room with a copy received from another peer.
// A copy for a different room supersedes the old session entirely.
func (ps *PeerState) AdoptRoom(self string, room *Room) {
	if ps.Room != nil && ps.Room.RoomId != room.RoomId {
		ps.Board = nil
		ps.EnemyView = nil
		ps.LastReveal = nil
		ps.Shots = ShotStats{}
	}
	ps.Room = room.Clone()
	if room.HostAddress != self {
		host := room.HostAddress
		ps.SubscribedToHost = &host
	}
}

func (ps *PeerState) AddInvitation(inv Invitation) {
	if findInvitation(ps.RoomInvitations, inv.HostAddress) >= 0 {
		return
	}
	ps.RoomInvitations = append(ps.RoomInvitations, inv)
}

// Removes and returns the invitation from hostAddress.
func (ps *PeerState) TakeInvitation(hostAddress string) (Invitation, bool) {
	i := findInvitation(ps.RoomInvitations, hostAddress)
	if i < 0 {
		return Invitation{}, false
	}
	inv := ps.RoomInvitations[i]
	ps.RoomInvitations = append(ps.RoomInvitations[:i:i], ps.RoomInvitations[i+1:]...)
	return inv, true
}

// Returns false if an invitation to address was already sent.
func (ps *PeerState) AddSentInvitation(address string) bool {
	if contains(ps.SentInvitations, address) {
		return false
	}
	ps.SentInvitations = append(ps.SentInvitations, address)
	return true
}

func (ps *PeerState) RemoveSentInvitation(address string) {
	ps.SentInvitations, _ = remove(ps.SentInvitations, address)
}

// Empties the sent invitation list and returns what was in it.
func (ps *PeerState) DrainSentInvitations() []string {
	sent := ps.SentInvitations
	ps.SentInvitations = make([]string, 0)
	return sent
}

func (ps *PeerState) Clone() *PeerState {
	clone := &PeerState{
		Room:             ps.Room.Clone(),
		Board:            ps.Board.Clone(),
		EnemyView:        ps.EnemyView.Clone(),
		LastReveal:       ps.LastReveal.Clone(),
		Social:           ps.Social.clone(),
		RoomInvitations:  append(make([]Invitation, 0, len(ps.RoomInvitations)), ps.RoomInvitations...),
		SentInvitations:  append(make([]string, 0, len(ps.SentInvitations)), ps.SentInvitations...),
		MatchmakingQueue: ps.MatchmakingQueue.clone(),
		Shots:            ps.Shots,
	}
	if ps.SubscribedToHost != nil {
		h := *ps.SubscribedToHost
		clone.SubscribedToHost = &h
	}
	if ps.LastNotification != nil {
		n := *ps.LastNotification
		clone.LastNotification = &n
	}
	return clone
}
