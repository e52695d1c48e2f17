package battleship

// Invitations older than this many microseconds are dropped on accept.
const InvitationWindow uint64 = 300_000_000

type Invitation struct {
	HostAddress string `json:"host_address"`
	Timestamp   uint64 `json:"timestamp"`
}

// An invitation can only be accepted strictly after it was issued and
// within the window, bounds included.
func (inv Invitation) IsFresh(now uint64) bool {
	return now > inv.Timestamp && now-inv.Timestamp <= InvitationWindow
}

func findInvitation(invitations []Invitation, hostAddress string) int {
	for i, inv := range invitations {
		if inv.HostAddress == hostAddress {
			return i
		}
	}
	return -1
}
