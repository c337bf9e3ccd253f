// Package day04 validates passports made of loosely formatted key:value
// fields.
package day04

import (
	"regexp"
	"strconv"

	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 4, Title: "Passport Processing", Solve: solve}

// Passport maps field keys to their raw values.
type Passport map[string]string

var (
	fieldPattern  = regexp.MustCompile(`([a-z]+):(\S+)`)
	yearPattern   = regexp.MustCompile(`^[0-9]{4}$`)
	heightPattern = regexp.MustCompile(`^([0-9]+)(cm|in)$`)
	hairPattern   = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	eyePattern    = regexp.MustCompile(`^(amb|blu|brn|gry|grn|hzl|oth)$`)
	pidPattern    = regexp.MustCompile(`^[0-9]{9}$`)
)

// Parse reads passports separated by blank lines.
func Parse(in input.Input) []Passport {
	var passports []Passport
	for _, group := range in.Paragraphs() {
		p := make(Passport)
		for _, line := range group {
			for _, m := range fieldPattern.FindAllStringSubmatch(line.Text, -1) {
				p[m[1]] = m[2]
			}
		}
		passports = append(passports, p)
	}
	return passports
}

// Required lists the fields a passport must carry; cid is optional.
var Required = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

// HasFields reports whether all required fields are present.
func (p Passport) HasFields() bool {
	for _, key := range Required {
		if _, ok := p[key]; !ok {
			return false
		}
	}
	return true
}

func yearIn(s string, lo, hi int) bool {
	if !yearPattern.MatchString(s) {
		return false
	}
	y, _ := strconv.Atoi(s)
	return y >= lo && y <= hi
}

// ValidData reports whether every required field holds valid data.
func (p Passport) ValidData() bool {
	if !p.HasFields() {
		return false
	}
	if !yearIn(p["byr"], 1920, 2002) || !yearIn(p["iyr"], 2010, 2020) || !yearIn(p["eyr"], 2020, 2030) {
		return false
	}
	m := heightPattern.FindStringSubmatch(p["hgt"])
	if m == nil {
		return false
	}
	h, _ := strconv.Atoi(m[1])
	switch {
	case m[2] == "cm" && (h < 150 || h > 193):
		return false
	case m[2] == "in" && (h < 59 || h > 76):
		return false
	}
	return hairPattern.MatchString(p["hcl"]) &&
		eyePattern.MatchString(p["ecl"]) &&
		pidPattern.MatchString(p["pid"])
}

// Count returns how many passports satisfy valid.
func Count(passports []Passport, valid func(Passport) bool) (n int) {
	for _, p := range passports {
		if valid(p) {
			n++
		}
	}
	return n
}

func solve(run *puzzle.Run) error {
	passports := Parse(run.Input)
	run.Answer("Valid Fields", Count(passports, Passport.HasFields))
	run.Answer("Valid Data", Count(passports, Passport.ValidData))
	return nil
}
