package inquiry

import "testing"

func TestToggleInvolution(t *testing.T) {
	i := &Inquiry{Responded: false}

	i.Toggle()
	if !i.Responded {
		t.Fatal("expected responded=true after first toggle")
	}

	i.Toggle()
	if i.Responded {
		t.Fatal("expected responded=false after second toggle")
	}
}
