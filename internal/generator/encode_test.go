package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func calendar(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

func TestEncode_KnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		t       time.Time
		blockID int
		seed    uint64
		want    uint64
	}{
		{
			name:    "all ones",
			t:       calendar(1, time.January, 1, 1, 1, 1),
			blockID: 1,
			seed:    1,
			want:    101010101010100001,
		},
		{
			name:    "seed two",
			t:       calendar(1, time.January, 1, 1, 1, 1),
			blockID: 1,
			seed:    2,
			want:    101010101010100002,
		},
		{
			name:    "two digit fields",
			t:       calendar(23, time.November, 11, 11, 11, 11),
			blockID: 11,
			seed:    1,
			want:    2311111111111100001,
		},
		{
			name:    "max block",
			t:       calendar(1, time.January, 1, 1, 1, 1),
			blockID: 99,
			seed:    1,
			want:    101010101019900001,
		},
		{
			name:    "block wraps at one hundred",
			t:       calendar(1, time.January, 1, 1, 1, 1),
			blockID: 100,
			seed:    1,
			want:    101010101010000001,
		},
		{
			name:    "year reduced modulo 100",
			t:       calendar(2023, time.November, 11, 11, 11, 11),
			blockID: 11,
			seed:    1,
			want:    2311111111111100001,
		},
		{
			name:    "unix epoch",
			t:       time.Unix(0, 0).UTC(),
			blockID: 1,
			seed:    1,
			want:    7001010000000100001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.t, tt.blockID, tt.seed))
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	ts := calendar(24, time.June, 15, 9, 30, 45)
	first := Encode(ts, 42, 777)
	second := Encode(ts, 42, 777)
	assert.Equal(t, first, second)
}

func TestEncode_FieldIsolation(t *testing.T) {
	base := calendar(24, time.June, 15, 9, 30, 45)
	ref := Encode(base, 42, 777)

	t.Run("seed occupies the low five digits", func(t *testing.T) {
		got := Encode(base, 42, 778)
		assert.Equal(t, uint64(1), got-ref)
		assert.Equal(t, ref/SeedMod, got/SeedMod)
	})

	t.Run("block occupies digits six and seven", func(t *testing.T) {
		got := Encode(base, 43, 777)
		assert.Equal(t, unitBlock, got-ref)
		assert.Equal(t, ref%unitBlock, got%unitBlock)
		assert.Equal(t, ref/unitSecond, got/unitSecond)
	})

	t.Run("each calendar field moves only its own digits", func(t *testing.T) {
		cases := []struct {
			name string
			t    time.Time
			unit uint64
		}{
			{"second", calendar(24, time.June, 15, 9, 30, 46), unitSecond},
			{"minute", calendar(24, time.June, 15, 9, 31, 45), unitMinute},
			{"hour", calendar(24, time.June, 15, 10, 30, 45), unitHour},
			{"day", calendar(24, time.June, 16, 9, 30, 45), unitDay},
			{"month", calendar(24, time.July, 15, 9, 30, 45), unitMonth},
			{"year", calendar(25, time.June, 15, 9, 30, 45), unitYear},
		}
		for _, c := range cases {
			got := Encode(c.t, 42, 777)
			assert.Equal(t, c.unit, got-ref, c.name)
		}
	})
}

func TestEncode_NonUTCInput(t *testing.T) {
	// Encode always reads calendar fields in UTC regardless of the
	// location attached to the time value.
	loc := time.FixedZone("UTC+9", 9*3600)
	local := time.Date(1, time.January, 1, 10, 1, 1, 0, loc)
	assert.Equal(t, uint64(101010101010100001), Encode(local, 1, 1))
}
