package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Views carry time.Time and uuid.UUID; responses expose unix seconds and strings.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src interface{}) (interface{}, error) {
				return src.(time.Time).Unix(), nil
			},
		},
		{
			SrcType: (*time.Time)(nil),
			DstType: (*int64)(nil),
			Fn: func(src interface{}) (interface{}, error) {
				t := src.(*time.Time)
				if t == nil {
					return (*int64)(nil), nil
				}
				unix := t.Unix()
				return &unix, nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src interface{}) (interface{}, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: (*uuid.UUID)(nil),
			DstType: (*string)(nil),
			Fn: func(src interface{}) (interface{}, error) {
				id := src.(*uuid.UUID)
				if id == nil {
					return (*string)(nil), nil
				}
				s := id.String()
				return &s, nil
			},
		},
	},
}

func copyInto(to, from interface{}) {
	// Field sets are fixed at compile time; a failure here is a programming error.
	if err := copier.CopyWithOption(to, from, copyOption); err != nil {
		panic("response copy: " + err.Error())
	}
}
