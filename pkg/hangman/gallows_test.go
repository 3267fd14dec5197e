package hangman

import "testing"

func TestGallowsEnd(t *testing.T) {
	stages := Stages()
	if len(stages) != 7 {
		t.Fatalf("expected 7 gallows stages, got %d: %v", len(stages), stages)
	}
	if stages[len(stages)-1] != GallowsEnd {
		t.Errorf("expected last stage to be %s, got %s", GallowsEnd, stages[len(stages)-1])
	}

	if g, ok := GallowsEnd.Next(); ok || g != GallowsEnd {
		t.Errorf("expected no stage after %s, got %s", GallowsEnd, g)
	}

	for i := 1; i < len(stages); i++ {
		if stages[i] <= stages[i-1] {
			t.Errorf("stage %s does not follow %s", stages[i], stages[i-1])
		}
	}
}
