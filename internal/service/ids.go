package service

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomBase36 returns n random base-36 characters. The codes only need
// practical uniqueness, not unguessability.
func randomBase36(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(base36Chars[rand.Intn(len(base36Chars))])
	}
	return b.String()
}

func base36Timestamp() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36)
}

// generateTicketID builds a tracking identifier for a contact submission,
// format DFP-<timestamp36>-<random5>, upper-cased.
func generateTicketID() string {
	return strings.ToUpper(fmt.Sprintf("DFP-%s-%s", base36Timestamp(), randomBase36(5)))
}

// generateWelcomeCode builds a discount code for a newsletter signup,
// format <PREFIX><discount>-<timestamp36><random4>, upper-cased.
func generateWelcomeCode(prefix string, discount int) string {
	return strings.ToUpper(fmt.Sprintf("%s%d-%s%s", prefix, discount, base36Timestamp(), randomBase36(4)))
}
