package gridview

// Option configures a table.
type Option func(*options)

// options holds all table configuration via the extensions map.
// All options use the OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for table options.
//
// Example:
//
//	var OptMyThing = gridview.NewOptKey("myThing", defaultValue)
//
//	t := gridview.NewTable("grid", gridview.WithOpt(OptMyThing, value))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// TableFlags toggle table features.
type TableFlags uint32

const (
	TableFlagsNone TableFlags = 0

	TableFlagsZeroBasedHeaders     TableFlags = 1 << 0 // Number headers from 0 instead of 1
	TableFlagsHighlightHoveredCell TableFlags = 1 << 1 // Tint the value cell under the pointer
	TableFlagsStriped              TableFlags = 1 << 2 // Alternate row backgrounds
	TableFlagsNoGridLines          TableFlags = 1 << 3 // Leave the gaps between cells unpainted
)

// --- Table Options ---
var (
	OptFlags            = NewOptKey("flags", TableFlagsStriped)
	OptDefaultCellSize  = NewOptKey("defaultCellSize", Vec2{}) // Zero = derived from Style.InteractSize
	OptMinSize          = NewOptKey("minSize", Vec2{400, 200})
	OptSize             = NewOptKey("size", Vec2{}) // Zero = available space
	OptColumnParameters = NewOptKey[[]AxisParameters]("columnParameters", nil)
	OptRowParameters    = NewOptKey[[]AxisParameters]("rowParameters", nil)
	OptStateStore       = NewOptKey[StateStore]("stateStore", nil)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithFlags replaces the feature flags.
func WithFlags(flags TableFlags) Option { return WithOpt(OptFlags, flags) }

// WithDefaultCellSize sets the inner size of cells without parameters, and
// of the header row and column.
func WithDefaultCellSize(size Vec2) Option { return WithOpt(OptDefaultCellSize, size) }

// WithMinSize sets the smallest area the table occupies.
func WithMinSize(size Vec2) Option { return WithOpt(OptMinSize, size) }

// WithSize fixes the table area instead of filling the available space.
func WithSize(size Vec2) Option { return WithOpt(OptSize, size) }

// WithColumnParameters configures columns by data index.
func WithColumnParameters(params ...AxisParameters) Option {
	return WithOpt(OptColumnParameters, params)
}

// WithRowParameters configures rows by data index.
func WithRowParameters(params ...AxisParameters) Option {
	return WithOpt(OptRowParameters, params)
}

// WithStateStore persists column widths and row heights in store.
func WithStateStore(store StateStore) Option { return WithOpt(OptStateStore, store) }
