package nationalid

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Generator produces random, fully valid national IDs.
// All randomness comes from crypto/rand — no math/rand, no seeding.
type Generator struct{}

// NewGenerator creates a generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a random 14-digit ID that Parse accepts for the
// same now: date of birth in [1900-01-01, now], a known governorate
// code, and non-zero gender and check digits.
func (g *Generator) Generate(now time.Time) string {
	dob := g.dob(now)
	entries := Governorates()
	gov := entries[randIntn(len(entries))]
	seq := fmt.Sprintf("%03d%d", randIntn(1000), 1+randIntn(9))
	check := 1 + randIntn(9)

	return fmt.Sprintf("%d%02d%02d%02d%s%s%d",
		centuryOf(dob.Year())-18,
		dob.Year()%100,
		int(dob.Month()),
		dob.Day(),
		gov.Code,
		seq,
		check,
	)
}

// Record generates an ID and its decoded record in one step.
func (g *Generator) Record(now time.Time) (Record, string) {
	id := g.Generate(now)
	rec, err := Parse(id, now)
	if err != nil {
		// generated IDs satisfy Parse by construction
		panic("nationalid: generated invalid id " + id + ": " + err.Error())
	}
	return rec, id
}

// dob picks a random date between 1900-01-01 and now inclusive.
func (g *Generator) dob(now time.Time) time.Time {
	upper := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(upper.Sub(minBirthDate).Hours() / 24)
	return minBirthDate.AddDate(0, 0, randIntn(days+1))
}

// randIntn returns a cryptographically random int in [0, n).
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
