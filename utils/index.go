package utils

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// GetFirstValue returns the first value of a form key, or "".
func GetFirstValue(values map[string][]string, key string) string {
	if v, ok := values[key]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}

func Ptr[T any](v T) *T {
	return &v
}

var filenameStrip = regexp.MustCompile(`[^a-zA-Z0-9 ]`)

// SanitizeFilename keeps letters, digits and spaces, then turns spaces
// into underscores: "Alice Rao-O'Neil" -> "Alice_RaoONeil".
func SanitizeFilename(name string) string {
	clean := filenameStrip.ReplaceAllString(name, "")
	return strings.ReplaceAll(clean, " ", "_")
}

// FormatWithThousands renders a money amount with comma separators and
// two decimal places: 1234567.5 -> "1,234,567.50".
func FormatWithThousands(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var out []byte
	n := len(intPart)
	for i := 0; i < n; i++ {
		out = append(out, intPart[i])
		pos := n - i - 1
		if pos > 0 && pos%3 == 0 {
			out = append(out, ',')
		}
	}

	result := string(out) + "." + fracPart
	if neg {
		result = "-" + result
	}
	return result
}

// FormatCountWithThousands renders an integer with comma separators.
func FormatCountWithThousands(v int64) string {
	return strings.TrimSuffix(FormatWithThousands(decimal.NewFromInt(v)), ".00")
}
