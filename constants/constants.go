package constants

const (
	// PageCalendar is not shown to the user ever, and is only used in the code.
	// Its primary purpose is for use in switch/case statements to determine the
	// current page.
	PageCalendar = "Calendar"
	PageForm     = "Form"
	PageDetail   = "Detail"
	PageSearch   = "Search"
	PageHelp     = "Help"
	PagePrompt   = "Prompt"
)

// Keys used in the persisted key-value store. Each one holds a JSON array of
// entries.
const (
	KeySalaries  = "salaries"
	KeySpendings = "spendings"
)

const (
	// EntryTypeSalary and EntryTypeSpending are the only accepted values for
	// models.EntryType.
	EntryTypeSalary   = "salary"
	EntryTypeSpending = "spending"

	// DateLayout is the standard representation of a date in this
	// application, both in storage and on screen.
	DateLayout = "2006-01-02"

	// MonthLayout is accepted by the -month flag.
	MonthLayout = "2006-01"

	// DefaultRecurrences is how many follow-up months a recurring entry
	// generates.
	DefaultRecurrences = 12

	// MaxRecurrences caps the recurrences setting.
	MaxRecurrences = 12

	DaysInWeek = 7

	ConfigVersion = "1"

	// DefaultConfigParentDir is the directory name used under every xdg base
	// directory.
	DefaultConfigParentDir = "finance-calendar"
	DefaultConfig          = "config.yml"
	DefaultFileStore       = "store.json"
	DefaultSQLiteStore     = "store.db"
	DefaultLogFile         = "finance-calendar.log"
)

const (
	StoreBackendFile   = "file"
	StoreBackendSQLite = "sqlite"
	StoreBackendMemory = "memory"
)

// Theme color keys. Every theme file may define any of these; missing values
// fall back to the standard theme.
const (
	ColorDayBoth     = "DayBoth"
	ColorDaySalary   = "DaySalary"
	ColorDaySpending = "DaySpending"
	ColorDayNone     = "DayNone"
	ColorDayBlank    = "DayBlank"
	ColorDayText     = "DayText"
	ColorHeader      = "Header"
	ColorTitle       = "Title"

	ColorStatusError   = "StatusTextError"
	ColorStatusPassive = "StatusTextPassive"
	ColorStatusSuccess = "StatusTextSuccess"

	ColorDetailSalary   = "DetailSalary"
	ColorDetailSpending = "DetailSpending"
	ColorDetailEmpty    = "DetailEmpty"
)

// Reset is a tview dynamic color tag that resets every style attribute.
const Reset = "[-:-:-:-]"

// Actions that can be bound to keys in the config.
const (
	ActionQuit       = "quit"
	ActionPrevMonth  = "prevMonth"
	ActionNextMonth  = "nextMonth"
	ActionToday      = "today"
	ActionAdd        = "add"
	ActionView       = "view"
	ActionSearch     = "search"
	ActionSave       = "save"
	ActionEsc        = "esc"
	ActionGlobalHelp = "globalHelp"
	ActionHelp       = "help"
	ActionCalendar   = "calendar"
)

// AllActions is the ordered list of actions shown on the help page.
var AllActions = []string{
	ActionPrevMonth,
	ActionNextMonth,
	ActionToday,
	ActionView,
	ActionAdd,
	ActionSearch,
	ActionSave,
	ActionCalendar,
	ActionHelp,
	ActionGlobalHelp,
	ActionEsc,
	ActionQuit,
}

// DefaultMappings maps a key name (straight from tcell's event.Name()) to a
// single action.
var DefaultMappings = map[string]string{
	"Ctrl+Q":  ActionQuit,
	"Rune[[]": ActionPrevMonth,
	"Rune[]]": ActionNextMonth,
	"Ctrl+P":  ActionPrevMonth,
	"Ctrl+N":  ActionNextMonth,
	"Rune[t]": ActionToday,
	"Rune[a]": ActionAdd,
	"Rune[v]": ActionView,
	"Ctrl+F":  ActionSearch,
	"Rune[/]": ActionSearch,
	"Ctrl+S":  ActionSave,
	"Esc":     ActionEsc,
	"F1":      ActionGlobalHelp,
	"Rune[?]": ActionHelp,
	"F2":      ActionCalendar,
}

// Weekday header keys, Monday first. Values are looked up in the translation
// table.
var WeekdayHeaders = []string{
	"WeekdayMon",
	"WeekdayTue",
	"WeekdayWed",
	"WeekdayThu",
	"WeekdayFri",
	"WeekdaySat",
	"WeekdaySun",
}

const HelpTextTemplate = `[lightgreen::b]Finance Calendar[-:-:-:-]

[white]Tag days of the month with [green]salary[white] and [blue]spending[white] entries.
Entries can repeat every month for a year by checking [gold]Recurring monthly[white]
when adding them.

[lightgreen::b]Day colors[-:-:-:-]

- {{ .Both }}: salary and spending on the same day
- {{ .Salary }}: salary only
- {{ .Spending }}: spending only
- {{ .None }}: nothing recorded

[lightgreen::b]Keyboard Shortcuts[-:-:-:-]
{{ range .Actions }}
- [gold]{{ .Name }}[white]: {{ .Keys }}{{ end }}

Entries are saved automatically after every change.
`
