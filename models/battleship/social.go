package battleship

// SocialGraph is this peer's own directional view of friendships.
// The other side keeps its own; nothing is shared.
type SocialGraph struct {
	Friends          []string `json:"friends"`
	RequestsSent     []string `json:"requests_sent"`
	RequestsReceived []string `json:"requests_received"`
}

func contains(set []string, address string) bool {
	for _, a := range set {
		if a == address {
			return true
		}
	}
	return false
}

func remove(set []string, address string) ([]string, bool) {
	for i, a := range set {
		if a == address {
			return append(set[:i:i], set[i+1:]...), true
		}
	}
	return set, false
}

func (sg *SocialGraph) IsFriend(address string) bool {
	return contains(sg.Friends, address)
}

// Records an outgoing request. Returns false when nothing should be sent.
func (sg *SocialGraph) RequestSent(address string) bool {
	if sg.IsFriend(address) || contains(sg.RequestsSent, address) {
		return false
	}
	sg.RequestsSent = append(sg.RequestsSent, address)
	return true
}

func (sg *SocialGraph) ReceiveRequest(address string) {
	if sg.IsFriend(address) || contains(sg.RequestsReceived, address) {
		return
	}
	sg.RequestsReceived = append(sg.RequestsReceived, address)
}

// Moves a received request to friends. Returns true if the requester
// must be told.
func (sg *SocialGraph) Accept(address string) bool {
	var prs bool
	sg.RequestsReceived, prs = remove(sg.RequestsReceived, address)
	if !prs || sg.IsFriend(address) {
		return false
	}
	sg.Friends = append(sg.Friends, address)
	return true
}

func (sg *SocialGraph) Decline(address string) {
	sg.RequestsReceived, _ = remove(sg.RequestsReceived, address)
}

// The other side accepted our request.
func (sg *SocialGraph) ConfirmAccepted(address string) {
	if !sg.IsFriend(address) {
		sg.Friends = append(sg.Friends, address)
	}
	sg.RequestsSent, _ = remove(sg.RequestsSent, address)
}

func (sg SocialGraph) clone() SocialGraph {
	return SocialGraph{
		Friends:          append([]string(nil), sg.Friends...),
		RequestsSent:     append([]string(nil), sg.RequestsSent...),
		RequestsReceived: append([]string(nil), sg.RequestsReceived...),
	}
}
