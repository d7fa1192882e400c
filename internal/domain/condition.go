package domain

import (
	"fmt"
	"strings"
)

// Condition is a card grading code. Conditions are ordered from best to worst.
type Condition string

const (
	ConditionMint        Condition = "MT"
	ConditionNearMint    Condition = "NM"
	ConditionExcellent   Condition = "EX"
	ConditionGood        Condition = "GD"
	ConditionLightPlayed Condition = "LP"
	ConditionPlayed      Condition = "PL"
	ConditionPoor        Condition = "PO"
)

var conditionOrder = []Condition{
	ConditionMint,
	ConditionNearMint,
	ConditionExcellent,
	ConditionGood,
	ConditionLightPlayed,
	ConditionPlayed,
	ConditionPoor,
}

// ParseCondition accepts a condition code in any case.
func ParseCondition(s string) (Condition, error) {
	c := Condition(strings.ToUpper(strings.TrimSpace(s)))
	if c.Rank() < 0 {
		return "", fmt.Errorf("unknown condition %q", s)
	}
	return c, nil
}

// Rank returns 0 for Mint and grows as the condition gets worse, -1 if unknown.
func (c Condition) Rank() int {
	for i, known := range conditionOrder {
		if c == known {
			return i
		}
	}
	return -1
}

// AtLeast reports whether c is as good as min or better.
func (c Condition) AtLeast(min Condition) bool {
	rc, rm := c.Rank(), min.Rank()
	if rc < 0 || rm < 0 {
		return false
	}
	return rc <= rm
}

func (c Condition) String() string {
	return string(c)
}
