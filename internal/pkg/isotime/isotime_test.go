//go:build unit

package isotime_test

import (
	"testing"
	"time"

	"football-field-booking/internal/pkg/isotime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tashkent := time.FixedZone("UZT", 5*60*60)

	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "オフセット付きRFC3339",
			input: "2030-06-11T14:00:00+05:00",
			want:  time.Date(2030, 6, 11, 14, 0, 0, 0, tashkent),
		},
		{
			name:  "UTCのZ表記",
			input: "2030-06-11T09:00:00Z",
			want:  time.Date(2030, 6, 11, 14, 0, 0, 0, tashkent),
		},
		{
			name:  "小数秒付き",
			input: "2030-06-11T14:00:00.000000+05:00",
			want:  time.Date(2030, 6, 11, 14, 0, 0, 0, tashkent),
		},
		{
			name:  "タイムゾーンなしは設定タイムゾーンとして扱う",
			input: "2030-06-11T14:00:00",
			want:  time.Date(2030, 6, 11, 14, 0, 0, 0, tashkent),
		},
		{
			name:  "秒なし・空白区切り",
			input: "2030-06-11 14:00",
			want:  time.Date(2030, 6, 11, 14, 0, 0, 0, tashkent),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := isotime.Parse(c.input, tashkent)
			require.NoError(t, err)
			assert.True(t, c.want.Equal(got), "want %v got %v", c.want, got)
		})
	}

	t.Run("解析できない文字列はエラー", func(t *testing.T) {
		for _, s := range []string{"", "tomorrow", "2030-06-11", "2030-13-01T10:00:00", "11/06/2030 14:00"} {
			_, err := isotime.Parse(s, tashkent)
			assert.ErrorIs(t, err, isotime.ErrInvalidTimestamp, s)
		}
	})

	t.Run("タイムゾーンなしの時刻は壁時計の時刻を保つ", func(t *testing.T) {
		got, err := isotime.Parse("2030-06-11T14:00:00", tashkent)
		require.NoError(t, err)
		assert.Equal(t, 14, got.Hour())
		_, offset := got.Zone()
		assert.Equal(t, 5*60*60, offset)
	})
}
