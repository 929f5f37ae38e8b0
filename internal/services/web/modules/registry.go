package modules

import "github.com/louisbranch/welcomepath/internal/services/web/modules/dashboard"

// DefaultModules returns the stable web modules in mount order.
// A nil source renders the snapshot passed at mount time.
func DefaultModules(source dashboard.SnapshotSource) []Module {
	dash := dashboard.New()
	if source != nil {
		dash = dashboard.NewWithSource(source)
	}
	return []Module{
		dash,
	}
}
