package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

const RequestIDKey = "request_id"

// ParseID 解析路径中的整数 ID
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ParsePage 非数字时回退到第 1 页，小于 1 时报错
func ParsePage(s string) (int, error) {
	if s == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		// 超出 int 范围的正数视为最后一页之后
		if page > 0 {
			return math.MaxInt, nil
		}
		return 0, ErrInvalidPage
	}
	if err != nil {
		return 1, nil
	}
	if page < 1 {
		return 0, ErrInvalidPage
	}
	return page, nil
}

// FlexInt 同时接受 JSON 数字和数字字符串，前端下拉框提交的值是字符串
type FlexInt int

type FlexIntError struct {
	Value string
}

func (e *FlexIntError) Error() string {
	return fmt.Sprintf("cannot use %s as an integer", e.Value)
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &FlexIntError{Value: string(data)}
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return &FlexIntError{Value: string(data)}
		}
		*f = FlexInt(n)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return &FlexIntError{Value: string(data)}
	}
	i, err := strconv.Atoi(n.String())
	if err != nil {
		return &FlexIntError{Value: string(data)}
	}
	*f = FlexInt(i)
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

// Ints 将 FlexInt 切片转换为 int 切片
func Ints(values []FlexInt) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}
