// internal/defs/types.go
package defs

import (
	"errors"
	"strings"
)

// Class — класс бойца. Влияет только на внешний вид, не на боевые параметры.
type Class string

const (
	ClassArcher       Class = "archer"
	ClassAxeThrower   Class = "axe_thrower"
	ClassWizard       Class = "wizard"
	ClassShieldBearer Class = "shield_bearer"
	ClassDemon        Class = "demon"
	ClassMonk         Class = "monk"
)

// DefaultClass используется, когда выбор класса не распознан.
const DefaultClass = ClassWizard

// AllClasses — все классы в порядке меню выбора (клавиши 1–6).
var AllClasses = []Class{
	ClassArcher,
	ClassAxeThrower,
	ClassWizard,
	ClassShieldBearer,
	ClassDemon,
	ClassMonk,
}

// ErrUnknownClass возвращается ParseClass для нераспознанного ввода.
var ErrUnknownClass = errors.New("unknown fighter class")

// ParseClass разбирает ввод пользователя: имя класса ("Axe-Thrower", "monk")
// или его номер в меню ("1".."6").
func ParseClass(input string) (Class, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		idx := int(s[0] - '1')
		if idx < len(AllClasses) {
			return AllClasses[idx], nil
		}
	}
	for _, c := range AllClasses {
		if Class(s) == c {
			return c, nil
		}
	}
	return DefaultClass, ErrUnknownClass
}

// ClassOrDefault — как ParseClass, но без ошибки: при неверном вводе DefaultClass.
func ClassOrDefault(input string) Class {
	c, _ := ParseClass(input)
	return c
}
