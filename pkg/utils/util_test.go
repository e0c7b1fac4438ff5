package utils

import (
	"testing"
)

func TestOrDefault(t *testing.T) {
	t.Run("int: 0 の場合はデフォルト値を返すのだ", func(t *testing.T) {
		if got := OrDefault(0, 1); got != 1 {
			t.Errorf("expected 1, got %v", got)
		}
	})

	t.Run("int: 値がある場合はその値を返すのだ", func(t *testing.T) {
		if got := OrDefault(4, 1); got != 4 {
			t.Errorf("expected 4, got %v", got)
		}
	})

	t.Run("int: 負の値もそのまま返すのだ", func(t *testing.T) {
		if got := OrDefault(-2, 1); got != -2 {
			t.Errorf("expected -2, got %v", got)
		}
	})

	t.Run("string: 空文字列の場合はデフォルト値を返すのだ", func(t *testing.T) {
		if got := OrDefault("", "1:1"); got != "1:1" {
			t.Errorf("expected 1:1, got %q", got)
		}
	})

	t.Run("string: 値がある場合はその値を返すのだ", func(t *testing.T) {
		if got := OrDefault("16:9", "1:1"); got != "16:9" {
			t.Errorf("expected 16:9, got %q", got)
		}
	})
}
