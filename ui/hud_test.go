package ui

import (
	"testing"

	"github.com/automoto/sigmaplatformer/components"
)

func TestCounters(t *testing.T) {
	level, coins, deaths := Counters(&components.SessionData{Level: 4, Coins: 12, Deaths: 3})
	if level != "Level 4" || coins != "Coins 12" || deaths != "Deaths 3" {
		t.Errorf("Counters = %q %q %q", level, coins, deaths)
	}
}
