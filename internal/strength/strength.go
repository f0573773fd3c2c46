// Copyright (c) 2026 Keymaster Team
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package strength scores passwords against a fixed set of five rules and
// maps the score to a coarse strength tier. It is pure: no I/O, no logging
// and no package-level mutable state, so it is safe for concurrent use.
package strength

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinLength is the minimum number of characters required by the length rule.
const MinLength = 8

// SpecialChars is the exact set accepted by the special-character rule.
const SpecialChars = "!@#$%^&*()"

// RuleID identifies one rule.
type RuleID string

const (
	RuleLength  RuleID = "length"
	RuleDigit   RuleID = "digit"
	RuleUpper   RuleID = "upper"
	RuleLower   RuleID = "lower"
	RuleSpecial RuleID = "special"
)

// Rule is a single predicate over a password together with the
// human-readable requirement it expresses.
type Rule struct {
	ID          RuleID
	Description string
	check       func(string) bool
}

// Check reports whether password satisfies the rule.
func (r Rule) Check(password string) bool {
	return r.check(password)
}

// rules is the declared rule order. Unmet rules are always reported in this order.
var rules = [...]Rule{
	{ID: RuleLength, Description: "At least 8 characters long", check: hasMinLength},
	{ID: RuleDigit, Description: "At least one number", check: containsRange('0', '9')},
	{ID: RuleUpper, Description: "At least one uppercase letter", check: containsRange('A', 'Z')},
	{ID: RuleLower, Description: "At least one lowercase letter", check: containsRange('a', 'z')},
	{ID: RuleSpecial, Description: "At least one special character (" + SpecialChars + ")", check: containsSpecial},
}

// MaxScore is the score of a password that satisfies every rule.
const MaxScore = len(rules)

// Rules returns a copy of the rule table in declared order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules[:])
	return out
}

func hasMinLength(s string) bool {
	return utf8.RuneCountInString(s) >= MinLength
}

func containsRange(lo, hi rune) func(string) bool {
	return func(s string) bool {
		for _, r := range s {
			if r >= lo && r <= hi {
				return true
			}
		}
		return false
	}
}

func containsSpecial(s string) bool {
	return strings.ContainsAny(s, SpecialChars)
}

// Result is the outcome of scoring one password.
type Result struct {
	// Score is the number of satisfied rules, 0..MaxScore.
	Score int
	// Unmet lists the rules the password failed, in declared order.
	Unmet []Rule
}

// Evaluate checks password against every rule. All rules are evaluated even
// when earlier ones fail so that Unmet is always complete.
func Evaluate(password string) Result {
	res := Result{}
	for _, r := range rules {
		if r.Check(password) {
			res.Score++
			continue
		}
		res.Unmet = append(res.Unmet, r)
	}
	return res
}

// UnmetDescriptions returns the descriptions of the unmet rules in order.
func (r Result) UnmetDescriptions() []string {
	out := make([]string, 0, len(r.Unmet))
	for _, u := range r.Unmet {
		out = append(out, u.Description)
	}
	return out
}

// Satisfied reports whether the rule with the given id was met.
func (r Result) Satisfied(id RuleID) bool {
	for _, u := range r.Unmet {
		if u.ID == id {
			return false
		}
	}
	return true
}

// Passed reports whether every rule was met.
func (r Result) Passed() bool {
	return len(r.Unmet) == 0
}

// Tier returns the strength tier for the result's score. It panics if the
// result was not produced by Evaluate and carries an impossible score.
func (r Result) Tier() Tier {
	t, err := TierForScore(r.Score)
	if err != nil {
		panic(err)
	}
	return t
}

// Tier is a coarse strength label derived from a score.
type Tier int

const (
	Weak Tier = iota
	Medium
	Strong
)

func (t Tier) String() string {
	switch t {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// ErrScoreOutOfRange is returned by TierForScore for scores outside 0..MaxScore.
var ErrScoreOutOfRange = errors.New("score out of range")

// TierForScore maps a score to its tier: 0-2 Weak, 3-4 Medium, 5 Strong.
func TierForScore(score int) (Tier, error) {
	switch {
	case score < 0 || score > MaxScore:
		return Weak, fmt.Errorf("%w: %d (want 0..%d)", ErrScoreOutOfRange, score, MaxScore)
	case score <= 2:
		return Weak, nil
	case score < MaxScore:
		return Medium, nil
	default:
		return Strong, nil
	}
}
