// Package shortcut связывает сочетания клавиш с символьными действиями.
//
// Здесь разбор строк вида "Ctrl+Shift+T", реестр, который держит
// действия привязанными к горячим клавишам платформы, и маршрутизатор,
// превращающий нажатия обратно в действия для интерфейса.
package shortcut

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCombination возвращается, если в строке нет распознанной клавиши.
var ErrInvalidCombination = errors.New("invalid shortcut format")

// Modifier - набор клавиш-модификаторов.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	ModMeta // Cmd на macOS, Win/Super на остальных
)

// modifierOrder - канонический порядок вывода.
var modifierOrder = []Modifier{ModCtrl, ModAlt, ModShift, ModMeta}

var modifierNames = map[Modifier]string{
	ModCtrl:  "Ctrl",
	ModAlt:   "Alt",
	ModShift: "Shift",
	ModMeta:  "Cmd",
}

var modifierByName = map[string]Modifier{
	"Ctrl":    ModCtrl,
	"Control": ModCtrl,
	"Alt":     ModAlt,
	"Option":  ModAlt,
	"Shift":   ModShift,
	"Cmd":     ModMeta,
	"Command": ModMeta,
	"Meta":    ModMeta,
	"Super":   ModMeta,
}

// Has сообщает, содержит ли m все модификаторы o.
func (m Modifier) Has(o Modifier) bool {
	return m&o == o
}

// List возвращает модификаторы m по одному в каноническом порядке.
func (m Modifier) List() []Modifier {
	mods := make([]Modifier, 0, len(modifierOrder))
	for _, mod := range modifierOrder {
		if m.Has(mod) {
			mods = append(mods, mod)
		}
	}
	return mods
}

// String возвращает модификаторы через "+".
func (m Modifier) String() string {
	parts := make([]string, 0, len(modifierOrder))
	for _, mod := range m.List() {
		parts = append(parts, modifierNames[mod])
	}
	return strings.Join(parts, "+")
}

// Key - клавиша, не являющаяся модификатором.
type Key uint8

const (
	KeyNone Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyTab
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	keyCount
)

// keyNames хранит каноническое имя каждой клавиши.
var keyNames = [keyCount]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyEscape:    "Escape",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyF1:        "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4",
	KeyF5: "F5", KeyF6: "F6", KeyF7: "F7", KeyF8: "F8",
	KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
}

// keyAliases - допустимые написания помимо канонических.
var keyAliases = map[string]Key{
	"Return": KeyEnter,
	"Esc":    KeyEscape,
	"Del":    KeyDelete,
}

var keyByName = buildKeyIndex()

func buildKeyIndex() map[string]Key {
	idx := make(map[string]Key, int(keyCount)+len(keyAliases))
	for k := KeyA; k < keyCount; k++ {
		idx[keyNames[k]] = k
	}
	for name, k := range keyAliases {
		idx[name] = k
	}
	return idx
}

// String возвращает каноническое имя клавиши или "" для KeyNone и неизвестных значений.
func (k Key) String() string {
	if k >= keyCount {
		return ""
	}
	return keyNames[k]
}

// AllKeys возвращает все поддерживаемые клавиши в порядке объявления.
func AllKeys() []Key {
	keys := make([]Key, 0, int(keyCount)-1)
	for k := KeyA; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Combination - набор модификаторов и одна основная клавиша.
// Нулевое значение не является допустимым сочетанием.
type Combination struct {
	Mods Modifier
	Key  Key
}

// Valid сообщает, есть ли у c основная клавиша.
func (c Combination) Valid() bool {
	return c.Key != KeyNone && c.Key < keyCount
}

// String возвращает каноническую форму: Ctrl, Alt, Shift, Cmd, затем клавиша.
func (c Combination) String() string {
	if c.Mods == 0 {
		return c.Key.String()
	}
	return c.Mods.String() + "+" + c.Key.String()
}

// Parse разбирает сочетание вида "Ctrl+Shift+T".
//
// Токены обрезаются и сравниваются с учётом регистра. Неизвестные токены
// пропускаются, из нескольких клавиш побеждает последняя. Ошибка
// возвращается, только если клавиша не найдена.
func Parse(s string) (Combination, error) {
	var c Combination
	for _, token := range strings.Split(s, "+") {
		token = strings.TrimSpace(token)
		if mod, ok := modifierByName[token]; ok {
			c.Mods |= mod
			continue
		}
		if key, ok := keyByName[token]; ok {
			c.Key = key
		}
	}
	if c.Key == KeyNone {
		return Combination{}, fmt.Errorf("%w: %q", ErrInvalidCombination, s)
	}
	return c, nil
}
