package translations

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultLanguage = "en_US.UTF-8"

// load loads translations/${language}.yml and returns a map of strings for
// converted languages.
func load(allTranslations fs.FS, language string) (map[string]string, error) {
	if language == "" {
		language = defaultLanguage
	}

	t := make(map[string]string)
	file := fmt.Sprintf("translations/%v.yml", language)

	b, err := fs.ReadFile(allTranslations, file)
	if err != nil {
		logrus.Debugf("failed to load file %v: %v", file, err.Error())

		file = fmt.Sprintf("translations/%v.yml", defaultLanguage)

		b, err = fs.ReadFile(allTranslations, file)
		if err != nil {
			return t, fmt.Errorf("failed to load default language file %v: %w", file, err)
		}
	}

	err = yaml.Unmarshal(b, &t)
	if err != nil {
		return t, fmt.Errorf("failed to unmarshal file %v: %w", file, err)
	}

	return t, nil
}

// Language picks the language to load: the configured one if set, otherwise
// $LANG.
func Language(configured string) string {
	if strings.TrimSpace(configured) != "" {
		return configured
	}

	return os.Getenv("LANG")
}

// Load loads translations/${language}.yml and returns a map of strings for
// converted languages. As a fallback, it loads the defaultLanguage first, so
// that strings that are not yet translated will still show visible text in
// some language (instead of an empty string).
func Load(allTranslations fs.FS, language string) (map[string]string, error) {
	t, err := load(allTranslations, defaultLanguage)
	if err != nil {
		return t, fmt.Errorf("failed to load default translations %v: %w", defaultLanguage, err)
	}

	switch language {
	case "":
		fallthrough
	case defaultLanguage:
		return t, nil
	default:
		break
	}

	u, err := load(allTranslations, language)
	if err != nil {
		return t, fmt.Errorf("failed to load specified translations %v: %w", language, err)
	}

	// merge the two maps
	for k, v := range u {
		t[k] = v
	}

	return t, nil
}
