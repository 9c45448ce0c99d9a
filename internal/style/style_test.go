package style

import (
	"github.com/robinovitch61/vl/internal/fixtures"
	"testing"
)

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#336699", "#C0FFEE"} {
		fixtures.Cmp(t, hex, rgbaToHex(hexToRGBA(hex)))
		fixtures.Cmp(t, hex, rgbaToHex(hslToRGBA(rgbaToHSL(hexToRGBA(hex)))))
	}
}

func TestAdjustColor(t *testing.T) {
	fixtures.Cmp(t, "#000000", adjustColor("#000000", 1))
	lighter := rgbaToHSL(hexToRGBA(adjustColor("#336699", 1.7)))
	base := rgbaToHSL(hexToRGBA("#336699"))
	if lighter.L <= base.L {
		t.Errorf("expected lighter color, got %v from %v", lighter, base)
	}
	darker := rgbaToHSL(hexToRGBA(adjustColor("#336699", 0.1)))
	if darker.L >= base.L {
		t.Errorf("expected darker color, got %v from %v", darker, base)
	}
}

func TestHexToRGBA_Invalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for invalid hex")
		}
	}()
	hexToRGBA("#12")
}
