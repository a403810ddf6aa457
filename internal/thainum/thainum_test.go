package thainum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thaivocab/thaivocab/internal/thainum"
)

func TestToThai(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"zero", 0, "ศูนย์"},
		{"one", 1, "หนึ่ง"},
		{"five", 5, "ห้า"},
		{"ten", 10, "สิบ"},
		{"eleven uses et", 11, "สิบเอ็ด"},
		{"twenty uses yi", 20, "ยี่สิบ"},
		{"twenty one", 21, "ยี่สิบเอ็ด"},
		{"thirty five", 35, "สามสิบห้า"},
		{"one hundred", 100, "หนึ่งร้อย"},
		{"one hundred one", 101, "หนึ่งร้อยเอ็ด"},
		{"five hundred fifty five", 555, "ห้าร้อยห้าสิบห้า"},
		{"one thousand", 1000, "หนึ่งพัน"},
		{"ten thousand", 10000, "หนึ่งหมื่น"},
		{"hundred thousand", 100000, "หนึ่งแสน"},
		{"one million", 1000000, "หนึ่งล้าน"},
		{"two and a half million", 2500000, "สองล้านห้าแสน"},
		{"max", 9999999, "เก้าล้านเก้าแสนเก้าหมื่นเก้าพันเก้าร้อยเก้าสิบเก้า"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, thainum.ToThai(tt.n))
		})
	}
}

func TestToThai_OutOfRange(t *testing.T) {
	assert.Equal(t, "-1", thainum.ToThai(-1))
	assert.Equal(t, "10000000", thainum.ToThai(thainum.MaxNumber+1))
}
