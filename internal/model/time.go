package model

import (
	"fmt"
	"strings"
	"time"
)

// LocalTime 是 DTO 时间戳的自定义时间类型，
// 序列化为 "YYYY-MM-DD HH:MM:SS"，不携带时区后缀。
type LocalTime time.Time

const localTimeLayout = "2006-01-02 15:04:05"

// MarshalJSON 实现 json.Marshaler 接口。
func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Time(t).Format(localTimeLayout))), nil
}

// UnmarshalJSON 实现 json.Unmarshaler 接口，接受与序列化相同的格式。
func (t *LocalTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := time.ParseInLocation(localTimeLayout, s, time.Local)
	if err != nil {
		return err
	}
	*t = LocalTime(parsed)
	return nil
}
