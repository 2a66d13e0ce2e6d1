package generator

import "time"

// SeedMod bounds seed values to the low five decimal digits of an ID.
const SeedMod = 100000

// Decimal position of each field in the packed ID:
// year(2) month(2) day(2) hour(2) minute(2) second(2) block(2) seed(5).
const (
	unitBlock  uint64 = 100_000
	unitSecond uint64 = 10_000_000
	unitMinute uint64 = 1_000_000_000
	unitHour   uint64 = 100_000_000_000
	unitDay    uint64 = 10_000_000_000_000
	unitMonth  uint64 = 1_000_000_000_000_000
	unitYear   uint64 = 100_000_000_000_000_000
)

// Encode packs the UTC calendar fields of t, blockID and seed into a
// single 19-digit integer, most significant field first. The year and
// blockID are reduced modulo 100. The result is well formed only when
// t's year is positive and seed is below SeedMod; neither is checked
// here, nor are the remaining calendar fields. Out-of-range inputs
// produce a malformed but non-crashing number, matching the caller
// contract of Make which validates before encoding.
//
// Encode is pure and touches no shared state.
func Encode(t time.Time, blockID int, seed uint64) uint64 {
	u := t.UTC()
	year, month, day := u.Date()
	hour, min, sec := u.Clock()

	block := blockID % 100
	if block < 0 {
		block += 100
	}

	return uint64(year%100)*unitYear +
		uint64(month)*unitMonth +
		uint64(day)*unitDay +
		uint64(hour)*unitHour +
		uint64(min)*unitMinute +
		uint64(sec)*unitSecond +
		uint64(block)*unitBlock +
		seed
}
