package generator

import (
	"math"
	"strconv"
)

// toInt32 は int を SDK 用の int32 に変換するのだ。
// 範囲外の値は int32 の上限・下限に丸めるのだ。
func toInt32(n int) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	if n < math.MinInt32 {
		return math.MinInt32
	}
	return int32(n)
}

// vendorStatusLabel はメトリクス用のステータスラベルを返すのだ。
func vendorStatusLabel(code int) string {
	if code == 0 {
		return metricStatusError
	}
	return strconv.Itoa(code)
}
