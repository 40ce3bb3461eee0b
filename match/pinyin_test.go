package match

import "testing"

// TestPhoneticKey 验证拼音转写与非汉字字符的原样保留。
func TestPhoneticKey(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"基础功能", "jichugongneng"},
		{"jichu", "jichu"},
		{"天气Pro", "tianqipro"},
		{"", ""},
	}
	for _, c := range cases {
		if got := PhoneticKey(c.in); got != c.want {
			t.Fatalf("PhoneticKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// TestPhoneticKeyMatchesLatinQuery 验证拉丁查询经转写后可命中中文名称。
func TestPhoneticKeyMatchesLatinQuery(t *testing.T) {
	if got := PartialRatio(PhoneticKey("jichu"), PhoneticKey("基础功能")); got != 100 {
		t.Fatalf("拼音前缀应完全命中: got=%d", got)
	}
}
