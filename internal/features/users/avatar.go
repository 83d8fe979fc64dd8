package users

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
)

// NewAvatarURL builds a ui-avatars.com URL from the username's initials with
// a random background color, used when a user signs up without a photo.
func NewAvatarURL(username string) string {
	var initials strings.Builder
	for _, part := range strings.Fields(username) {
		initials.WriteString(string([]rune(part)[0]))
	}
	if initials.Len() == 0 {
		initials.WriteString("?")
	}

	background := fmt.Sprintf("%06x", rand.Intn(0xffffff+1))

	return fmt.Sprintf(
		"https://ui-avatars.com/api/?name=%s&background=%s&color=fff",
		url.QueryEscape(initials.String()), background,
	)
}
