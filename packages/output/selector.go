package output

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"
)

// linePattern matches pure line selectors: "3", "2-5", "1,4,7-9".
var linePattern = regexp.MustCompile(`^[0-9]+([,-][0-9]+)*$`)

// selected narrows the body by selector: digit/comma/dash selectors
// slice the body by line (1-based), anything else is a JSON key path.
func (r *Renderer) selected(body []byte, selector string) error {
	if linePattern.MatchString(selector) {
		return r.selectLines(string(body), selector)
	}
	return r.selectKey(body, selector)
}

func (r *Renderer) selectLines(body, selector string) error {
	lines := strings.Split(body, "\n")
	yellow := color.New(color.FgYellow).SprintFunc()

	emit := func(n int) {
		if n >= 1 && n <= len(lines) {
			fmt.Fprintf(r.writer, "%s %s\n", yellow(strconv.Itoa(n)), lines[n-1])
		}
	}

	for _, part := range strings.Split(selector, ",") {
		lo, hi, found := strings.Cut(part, "-")
		from, err := strconv.Atoi(lo)
		if err != nil {
			return fmt.Errorf("invalid line selector: %s", selector)
		}
		to := from
		if found {
			to, err = strconv.Atoi(hi)
			if err != nil {
				return fmt.Errorf("invalid line selector: %s", selector)
			}
		}
		for n := from; n <= to; n++ {
			emit(n)
		}
	}
	return nil
}

func (r *Renderer) selectKey(body []byte, path string) error {
	if !gjson.ValidBytes(body) {
		return fmt.Errorf("response body is not valid JSON, cannot select key %q", path)
	}
	result := gjson.GetBytes(body, path)
	if !result.Exists() {
		return fmt.Errorf("key not found in response: %s", path)
	}
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(r.writer, "%s\n", green(result.Raw))
	return nil
}
