package helper

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"
)

func PrettyPrint(i interface{}) string {
	s, err := json.MarshalIndent(i, "", "\t")
	if err != nil {
		log.Printf("prettyprint err #%v ", err)
	}
	return string(s)
}

// Kebabify turns a free-form name into a kebab-case identifier, suitable
// for image names and compose service keys.
func Kebabify(data string) string {
	space := regexp.MustCompile(`(\s|_)+`)
	data = strings.ToLower(data)
	return space.ReplaceAllString(data, "-")
}
