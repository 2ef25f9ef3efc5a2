package altart

import "fmt"

// login page
var (
	SelectorEmailInput    = CSS("#email")
	SelectorPasswordInput = CSS("#password")
	SelectorLoginButton   = CSS(`//button[@type="submit"]`)
)

// artworks navigation
var (
	SelectorArtworksButton  = CSS(`(//span[@id="artworks"])[2]`)
	SelectorAddArtworksLink = CSS(`a[href="/artworks/create"]`)
)

// artwork form
var (
	SelectorArtworkName      = CSS(`input[id="artwork_name"]`)
	SelectorEditionDropdown  = Text("Select Edition Type")
	SelectorDescription      = CSS(`div[data-placeholder="Text here..."]`)
	SelectorCurrentPrice     = CSS("#current_price")
	SelectorPrimarySalePrice = CSS("#primary_sale_price")
	SelectorURL              = CSS(`input[id="url"]`)
	SelectorArtworkUpload    = CSS(`input[accept="image/png,image/jpg,image/jpeg,image/gif,video/mp4,video/mov"]`)
	SelectorStyleDropdown    = CSS("form div").Filter("Select Style").Nth(1)
	SelectorStyleInput       = CSS(`input[id="react-select-4-input"]`)
	SelectorGenesisDropdown  = CSS("form div").Filter("Select NFT Genesis").Nth(2)
	SelectorSupplyInput      = CSS("#react-select-6-input")
	SelectorCollaborator     = CSS(`input[id="react-select-7-input"]`)
	SelectorMarketplace      = Role("button", "Select Marketplace")
	SelectorCopyright        = Role("button", "Select copyright")
	SelectorPublish          = Role("button", "Publish")

	// the close icon of the style multi-select, clears every selected style
	SelectorStyleClear = CSS(`svg[xmlns="http://www.w3.org/2000/svg"] path[d="M12.0007 10.5865L16.9504 5.63672L18.3646 7.05093L13.4149 12.0007L18.3646 16.9504L16.9504 18.3646L12.0007 13.4149L7.05093 18.3646L5.63672 16.9504L10.5865 12.0007L5.63672 7.05093L7.05093 5.63672L12.0007 10.5865Z"]`)
)

// date picker
var (
	SelectorCalendarHeader = CSS(`div[data-state="open"] div[aria-live="polite"]`)
	SelectorPreviousMonth  = CSS(`button[name="previous-month"]`)
	SelectorNextMonth      = CSS(`button[name="next-month"]`)
)

// Option is an entry of an open dropdown or multi-select.
func Option(name string) Selector {
	return Role("option", name)
}

// FormButton is the nth (1-based) button of type "button" on the form.
func FormButton(n int) Selector {
	return CSS(fmt.Sprintf(`(//button[@type="button"])[%d]`, n))
}

// CurrencyDropdown is the currency selector next to the index'th price.
func CurrencyDropdown(index int) Selector {
	return CSS(".wallet-input").Nth(index)
}

// UserInput is the nth (1-based) "Username or Email address" input.
func UserInput(n int) Selector {
	return CSS(fmt.Sprintf(`(//input[@placeholder="Username or Email address"])[%d]`, n))
}

// TagContaining is the rendered tag of a selected multi-select value.
func TagContaining(text string) Selector {
	return CSS(fmt.Sprintf(`//div[contains(text(),'%s')]`, text))
}

// RemoveTag is the remove control of a selected multi-select value.
func RemoveTag(text string) Selector {
	return CSS(fmt.Sprintf(`div[aria-label="Remove %s"]`, text))
}

// FormField is the nth form div containing text.
func FormField(text string, nth int) Selector {
	return CSS("form div").Filter(text).Nth(nth)
}

// DatePickerTrigger is the index'th (1-based) closed date picker button.
func DatePickerTrigger(index int) Selector {
	return CSS(fmt.Sprintf(`(//button[@data-state="closed"])[%d]`, index))
}

// DatePickerLabel is the rendered date of the index'th date picker.
func DatePickerLabel(index int) Selector {
	return CSS(fmt.Sprintf(`(//button[@data-state="closed"])[%d]/div/span`, index))
}

// DayButton is the calendar button for day.
func DayButton(day string) Selector {
	return CSS(fmt.Sprintf(`button[name="day"]:text-is("%s")`, day))
}
