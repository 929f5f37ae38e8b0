package icons

import (
	"strings"
	"testing"
)

func TestMarkupCarriesDataIconMarker(t *testing.T) {
	for _, id := range []ID{Logo, Bell, CheckComplete, CheckIncomplete} {
		svg, ok := Markup(id)
		if !ok {
			t.Errorf("icon %s missing markup", id)
			continue
		}
		if !strings.Contains(svg, `data-icon="`+string(id)+`"`) {
			t.Errorf("icon %s markup missing data-icon marker", id)
		}
	}
}

func TestMarkupUnknownID(t *testing.T) {
	if _, ok := Markup(ID("missing")); ok {
		t.Fatal("expected unknown icon id to report missing")
	}
}

func TestCheckGlyphsAreDistinct(t *testing.T) {
	done, _ := Markup(CheckComplete)
	todo, _ := Markup(CheckIncomplete)
	if done == todo {
		t.Fatal("expected completed and incomplete checks to differ")
	}
	if !strings.Contains(done, `fill="#2DD4BF"`) {
		t.Fatalf("completed check should use the filled accent circle: %q", done)
	}
}
