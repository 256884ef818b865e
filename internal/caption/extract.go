package caption

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrNoCaption is returned when a response carries no usable text.
var ErrNoCaption = errors.New("no text returned from model")

// ExtractText pulls the caption out of a service response payload. The
// output_text convenience field wins when non-empty; otherwise the
// structured output items are scanned for the first message with a
// non-empty output_text content part.
func ExtractText(body []byte) (string, error) {
	if t := gjson.GetBytes(body, "output_text").String(); t != "" {
		return t, nil
	}

	var found string
	gjson.GetBytes(body, "output").ForEach(func(_, item gjson.Result) bool {
		if item.Get("type").String() != "message" {
			return true
		}
		item.Get("content").ForEach(func(_, part gjson.Result) bool {
			if part.Get("type").String() == "output_text" && part.Get("text").String() != "" {
				found = part.Get("text").String()
				return false
			}
			return true
		})
		return found == ""
	})

	if found == "" {
		return "", ErrNoCaption
	}
	return found, nil
}
