package chat

import "testing"

func TestAppend_RetainsOrder(t *testing.T) {
	l := NewLog(10)
	l.Append(KindSystem, "a")
	l.Append(KindUser, "b")
	msgs := l.Tail(10)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Text != "a" || msgs[1].Text != "b" {
		t.Fatalf("expected chronological order, got %q %q", msgs[0].Text, msgs[1].Text)
	}
}

func TestAppend_EvictsOldest(t *testing.T) {
	l := NewLog(2)
	l.Append(KindSystem, "a")
	l.Append(KindSystem, "b")
	l.Append(KindSystem, "c")
	if l.Len() != 2 {
		t.Fatalf("expected 2 messages, got %d", l.Len())
	}
	msgs := l.Tail(2)
	if msgs[0].Text != "b" || msgs[1].Text != "c" {
		t.Fatalf("expected [b c], got [%s %s]", msgs[0].Text, msgs[1].Text)
	}
}

func TestTail_NewestN(t *testing.T) {
	l := NewLog(10)
	for _, s := range []string{"a", "b", "c"} {
		l.Append(KindUser, s)
	}
	msgs := l.Tail(2)
	if len(msgs) != 2 || msgs[0].Text != "b" || msgs[1].Text != "c" {
		t.Fatalf("expected [b c], got %v", msgs)
	}
}

func TestKindLabels(t *testing.T) {
	cases := map[Kind]string{
		KindSystem:    "system",
		KindUser:      "you",
		KindAssistant: "assistant",
	}
	for k, want := range cases {
		if k.Label() != want {
			t.Fatalf("kind %d: expected %s, got %s", k, want, k.Label())
		}
	}
}
