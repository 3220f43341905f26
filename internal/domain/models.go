package domain

// IconRef names a presentation icon. It is resolved by the presentation layer only.
type IconRef string

// Icon references used by the catalog
const (
	IconBrain    IconRef = "brain"
	IconLayers   IconRef = "layers"
	IconNetwork  IconRef = "network"
	IconRepeat   IconRef = "repeat"
	IconListTree IconRef = "list-tree"
	IconSigma    IconRef = "sigma"
	IconGrid     IconRef = "grid"
	IconBook     IconRef = "book-open"
	IconTrees    IconRef = "trees"
	IconScanLine IconRef = "scan-line"
)

// AccentRef names a two-stop color treatment, from one hue to another.
type AccentRef string

// Accent references used by the catalog
const (
	AccentCyanEmerald   AccentRef = "cyan-emerald"
	AccentVioletIndigo  AccentRef = "violet-indigo"
	AccentFuchsiaPurple AccentRef = "fuchsia-purple"
	AccentRoseOrange    AccentRef = "rose-orange"
	AccentEmeraldTeal   AccentRef = "emerald-teal"
	AccentSkyCyan       AccentRef = "sky-cyan"
	AccentAmberRose     AccentRef = "amber-rose"
	AccentLimeEmerald   AccentRef = "lime-emerald"
	AccentGreenCyan     AccentRef = "green-cyan"
	AccentIndigoSky     AccentRef = "indigo-sky"
)

// ModelRecord describes one machine-learning model family for display
type ModelRecord struct {
	Key      string    `json:"key"` // identity only, never displayed
	Name     string    `json:"name"`
	Icon     IconRef   `json:"icon"`
	Accent   AccentRef `json:"accent"`
	BestFor  string    `json:"best_for"`
	Datasets []string  `json:"datasets"`
	UseCases []string  `json:"use_cases"`
}

// Clone returns a copy that shares no slices with m
func (m ModelRecord) Clone() ModelRecord {
	c := m
	c.Datasets = append([]string(nil), m.Datasets...)
	c.UseCases = append([]string(nil), m.UseCases...)
	return c
}

// TipRecord is one data-cleaning guidance entry
type TipRecord struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}
