package utils

import (
	"github.com/speps/go-hashids/v2"
)

// GenHashID 根据数字 ID 生成对外的短分享码
func GenHashID(salt string, id int64) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, _ := hashids.NewWithData(hd)
	e, _ := h.EncodeInt64([]int64{id})
	return e
}
