package utils

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	var value any = in

	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			fmt.Println(err)
			return string(raw)
		}
		value = decoded
	}

	out, err := json.MarshalIndent(value, "", "\t")
	if err != nil {
		fmt.Println(err)
	}

	return string(out)
}
