// Package thainum transliterates integers into Thai number words.
package thainum

import (
	"fmt"
	"strconv"
)

var digits = []string{"ศูนย์", "หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}

// Place values for a six-digit group, most significant first. The empty
// string is the ones place.
var places = []string{"แสน", "หมื่น", "พัน", "ร้อย", "สิบ", ""}

// MaxNumber is the largest value ToThai can transliterate.
const MaxNumber = 9999999

// ToThai converts n to its Thai text representation. Values outside
// [0, MaxNumber] are returned as plain decimal digits.
func ToThai(n int) string {
	if n == 0 {
		return digits[0]
	}
	if n < 0 || n > MaxNumber {
		return strconv.Itoa(n)
	}

	result := ""
	if n >= 1000000 {
		result += underMillion(n/1000000) + "ล้าน"
		n = n % 1000000
	}
	if n > 0 {
		result += underMillion(n)
	}
	return result
}

func underMillion(n int) string {
	if n == 0 {
		return ""
	}

	s := fmt.Sprintf("%06d", n)
	result := ""
	for i, r := range s {
		d := int(r - '0')
		if d == 0 {
			continue
		}
		place := places[i]
		switch place {
		case "สิบ":
			// Tens have irregular forms: 10 is plain สิบ, 20 uses ยี่.
			switch d {
			case 1:
				result += "สิบ"
			case 2:
				result += "ยี่สิบ"
			default:
				result += digits[d] + "สิบ"
			}
		case "":
			// Trailing one is เอ็ด except for the bare number 1.
			if d == 1 && n > 1 {
				result += "เอ็ด"
			} else {
				result += digits[d]
			}
		default:
			result += digits[d] + place
		}
	}
	return result
}
