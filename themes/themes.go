package themes

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultTheme = "standard"

// isFile reports whether theme refers to a yml file on disk rather than one
// of the embedded themes.
func isFile(theme string) bool {
	return strings.HasSuffix(theme, ".yml") || strings.HasSuffix(theme, ".yaml")
}

// load loads themes/${theme}.yml and returns a map of colors. Themes ending
// in .yml or .yaml are read from disk instead.
func load(allThemes fs.FS, theme string) (map[string]string, error) {
	if theme == "" {
		theme = defaultTheme
	}

	t := make(map[string]string)

	var (
		b    []byte
		err  error
		file string
	)

	if isFile(theme) {
		file = theme
		b, err = os.ReadFile(file)
	} else {
		file = fmt.Sprintf("themes/%v.yml", theme)
		b, err = fs.ReadFile(allThemes, file)
	}

	if err != nil {
		return t, fmt.Errorf("failed to load file %v: %w", file, err)
	}

	err = yaml.Unmarshal(b, &t)
	if err != nil {
		return t, fmt.Errorf("failed to unmarshal file %v: %w", file, err)
	}

	return t, nil
}

// Load loads themes/${theme}.yml and returns a map of strings of colors. As a
// fallback, it loads the defaultTheme first, so that colors the theme leaves
// undefined still have a value.
func Load(allThemes fs.FS, theme string) (map[string]string, error) {
	t, err := load(allThemes, defaultTheme)
	if err != nil {
		return t, fmt.Errorf("failed to load default theme %v: %w", defaultTheme, err)
	}

	switch theme {
	case "":
		fallthrough
	case defaultTheme:
		return t, nil
	default:
		break
	}

	u, err := load(allThemes, theme)
	if err != nil {
		return t, fmt.Errorf("failed to load specified theme %v: %w", theme, err)
	}

	// merge the two maps
	for k, v := range u {
		t[k] = v
	}

	return t, nil
}
