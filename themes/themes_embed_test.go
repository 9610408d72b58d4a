package themes

import (
	"os"
	"testing"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"

	"github.com/stretchr/testify/require"
)

// every shipped theme must parse and define the four day colors
func TestShippedThemes(t *testing.T) {
	shipped := os.DirFS("..")

	for _, theme := range []string{"standard", "mono"} {
		colors, err := Load(shipped, theme)
		require.NoError(t, err, theme)

		for _, key := range []string{c.ColorDayBoth, c.ColorDaySalary, c.ColorDaySpending, c.ColorDayNone} {
			require.NotEmpty(t, colors[key], "%v: %v", theme, key)
		}
	}
}
