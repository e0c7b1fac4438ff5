package utils

// OrDefault は、v がゼロ値の場合に def を返します。
// 0 や空文字列は「未指定」と同じ扱いになります。
func OrDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
