package session

import "testing"

func TestSetGetClear(t *testing.T) {
	s := NewStore()
	adminID := int64(42)

	if _, ok := s.Get(adminID); ok {
		t.Fatal("empty store should have no session")
	}

	s.Set(adminID, Session{Action: ActionReply, TargetID: 7})

	sess, ok := s.Get(adminID)
	if !ok {
		t.Fatal("expected a pending session")
	}
	if sess.Action != ActionReply || sess.TargetID != 7 {
		t.Errorf("got %+v, want reply targeting 7", sess)
	}

	s.Clear(adminID)
	if _, ok := s.Get(adminID); ok {
		t.Error("session should be gone after Clear")
	}
}

func TestSetDiscardsPreviousSession(t *testing.T) {
	s := NewStore()
	adminID := int64(42)

	s.Set(adminID, Session{Action: ActionReply, TargetID: 7})
	s.Set(adminID, Session{Action: ActionBlockTemporary, TargetID: 99})

	sess, ok := s.Get(adminID)
	if !ok {
		t.Fatal("expected a pending session")
	}
	if sess.Action != ActionBlockTemporary || sess.TargetID != 99 {
		t.Errorf("got %+v, want the newer block session", sess)
	}
}

func TestClearUnknownAdminIsNoop(t *testing.T) {
	s := NewStore()
	s.Clear(1)
}
