package altart

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// maxCalendarSteps bounds month navigation to twenty years in either direction.
const maxCalendarSteps = 240

// ExtractTextByPattern splits paragraph on pattern and returns the index'th
// non-empty trimmed part.
func ExtractTextByPattern(paragraph, pattern string, index int) (string, bool) {
	parts := []string{}

	for _, part := range strings.Split(paragraph, pattern) {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}

	if index < 0 || index >= len(parts) {
		return "", false
	}

	return parts[index], true
}

type calendarMonth struct {
	Month time.Month
	Year  int
}

func (c calendarMonth) after(other calendarMonth) bool {
	if c.Year != other.Year {
		return c.Year > other.Year
	}
	return c.Month > other.Month
}

func (c calendarMonth) String() string {
	return fmt.Sprintf("%s %d", c.Month, c.Year)
}

func parseMonth(text string) (time.Month, error) {
	t, err := time.Parse("January", text)
	if err != nil {
		return 0, fmt.Errorf("unknown month %q", text)
	}
	return t.Month(), nil
}

func parseYear(text string) (int, error) {
	year, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("failed to parse year: %q", text)
	}
	return year, nil
}

// parseCalendarHeader reads a date picker caption such as "October 2024".
func parseCalendarHeader(text string) (calendarMonth, error) {
	monthText, ok := ExtractTextByPattern(text, " ", 0)
	if !ok {
		return calendarMonth{}, fmt.Errorf("calendar header %q has no month", text)
	}

	yearText, ok := ExtractTextByPattern(text, " ", 1)
	if !ok {
		return calendarMonth{}, fmt.Errorf("calendar header %q has no year", text)
	}

	month, err := parseMonth(monthText)
	if err != nil {
		return calendarMonth{}, err
	}

	year, err := parseYear(yearText)
	if err != nil {
		return calendarMonth{}, err
	}

	return calendarMonth{Month: month, Year: year}, nil
}

// ExpectedDateLabel is the text a date picker shows once a date is chosen,
// e.g. "Oct 15, 2024".
func ExpectedDateLabel(day, month, year string) string {
	abbr := month
	if len(abbr) > 3 {
		abbr = abbr[:3]
	}
	return fmt.Sprintf("%s %s, %s", abbr, day, year)
}

func (p *ArtworksPage) readCalendar() (calendarMonth, error) {
	text, err := p.Driver.TextContent(SelectorCalendarHeader)
	if err != nil {
		return calendarMonth{}, fmt.Errorf("could not retrieve the current month and year from the date picker: %w", err)
	}
	return parseCalendarHeader(text)
}

// SelectDate opens the index'th (1-based) date picker, pages the calendar to
// month and year, picks day and checks the label the picker renders.
func (p *ArtworksPage) SelectDate(day, month, year string, index int) error {
	targetMonth, err := parseMonth(month)
	if err != nil {
		return err
	}

	targetYear, err := parseYear(year)
	if err != nil {
		return err
	}

	target := calendarMonth{Month: targetMonth, Year: targetYear}

	err = p.Driver.Click(DatePickerTrigger(index))
	if err != nil {
		return err
	}

	current, err := p.readCalendar()
	if err != nil {
		return err
	}

	for steps := 0; current != target; steps++ {
		if steps == maxCalendarSteps {
			return fmt.Errorf("%w: at %s after %d steps, want %s", ErrCalendarUnreachable, current, steps, target)
		}

		if current.after(target) {
			err = p.Driver.Click(SelectorPreviousMonth)
		} else {
			err = p.Driver.Click(SelectorNextMonth)
		}
		if err != nil {
			return err
		}

		current, err = p.readCalendar()
		if err != nil {
			return err
		}
	}

	err = p.Driver.Click(DayButton(day))
	if err != nil {
		return err
	}

	// close the picker
	err = p.Driver.ClickAt(0, 0)
	if err != nil {
		return err
	}

	label := DatePickerLabel(index)
	selected, err := p.Driver.TextContent(label)
	if err != nil {
		return err
	}

	p.Logger.Info("selected date", "picker", index, "date", selected)

	want := ExpectedDateLabel(day, month, year)
	if selected != want {
		return &AssertionError{Selector: label, Want: want, Got: selected}
	}

	return nil
}
