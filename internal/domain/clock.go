package domain

import "time"

// JST は「今月より前かどうか」の判定に使う基準タイムゾーン
// 日本にサマータイムはないので固定オフセットで十分
var JST = time.FixedZone("Asia/Tokyo", 9*60*60)

// Clock は現在日時の供給源
// 集約に注入することでテスト時に日時を固定できる
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().In(JST)
}
