package battleship

import "testing"

func TestFriendRequestFlow(t *testing.T) {
	var requester, target SocialGraph

	if !requester.RequestSent(guestAddr) {
		t.Fatal("expected request to be sent")
	}
	if requester.RequestSent(guestAddr) {
		t.Fatal("request sent twice")
	}

	target.ReceiveRequest(hostAddr)
	target.ReceiveRequest(hostAddr)
	if len(target.RequestsReceived) != 1 {
		t.Fatalf("expected 1 received request, got: %v", target.RequestsReceived)
	}

	if !target.Accept(hostAddr) {
		t.Fatal("expected accept to notify the requester")
	}
	if target.Accept(hostAddr) {
		t.Fatal("accepted twice")
	}
	requester.ConfirmAccepted(guestAddr)

	if !requester.IsFriend(guestAddr) || !target.IsFriend(hostAddr) {
		t.Fatal("expected both sides to be friends")
	}
	if len(requester.RequestsSent) != 0 || len(target.RequestsReceived) != 0 {
		t.Fatalf("pending requests left: %v %v", requester.RequestsSent, target.RequestsReceived)
	}
	if requester.RequestSent(guestAddr) {
		t.Fatal("request sent to an existing friend")
	}

	requester.ConfirmAccepted(guestAddr)
	if len(requester.Friends) != 1 {
		t.Fatalf("friend added twice: %v", requester.Friends)
	}
}

func TestDeclineFriendRequest(t *testing.T) {
	var sg SocialGraph
	sg.ReceiveRequest(hostAddr)
	sg.Decline(hostAddr)

	if len(sg.RequestsReceived) != 0 || sg.IsFriend(hostAddr) {
		t.Fatalf("unexpected graph after decline: %+v", sg)
	}
	if sg.Accept(hostAddr) {
		t.Fatal("accepted a declined request")
	}
}
