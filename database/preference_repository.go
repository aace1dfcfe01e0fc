package database

import "context"

const themeKey = "storefront:theme"

// Theme preference values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// PreferenceRepository persists the theme preference as a plain string.
type PreferenceRepository struct {
	store KVStore
}

func NewPreferenceRepository(store KVStore) *PreferenceRepository {
	return &PreferenceRepository{store: store}
}

// GetTheme reads the stored theme, defaulting to light when unset or when
// the stored value is not a known theme.
func (r *PreferenceRepository) GetTheme(ctx context.Context) (string, error) {
	val, ok, err := r.store.Get(ctx, themeKey)
	if err != nil {
		return ThemeLight, err
	}
	if !ok || (val != ThemeLight && val != ThemeDark) {
		return ThemeLight, nil
	}
	return val, nil
}

// SetTheme stores the theme preference.
func (r *PreferenceRepository) SetTheme(ctx context.Context, theme string) error {
	return r.store.Set(ctx, themeKey, theme)
}
