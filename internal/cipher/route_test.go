package cipher_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avesov/cipherctl/internal/cipher"
)

func TestNewRouteRejectsBadColumnCounts(t *testing.T) {
	for _, cols := range []int{0, -1, -5, cipher.MaxCols + 1, 150} {
		_, err := cipher.NewRoute(cols)
		require.Error(t, err, "cols=%d", cols)
		assert.ErrorIs(t, err, cipher.ErrInvalidKey, "cols=%d", cols)
		assert.ErrorIs(t, err, cipher.ErrInvalidInput, "cols=%d", cols)
	}
}

func TestRouteEncrypt(t *testing.T) {
	cases := []struct {
		name string
		cols int
		text string
		want string
	}{
		{"FullGrid", 3, "ПРИВЕТМИР", "ИТРРЕИПВМ"},
		{"SingleRowReversesText", 10, "ПРИВЕТ", "ТЕВИРП"},
		{"SingleColumnIsIdentity", 1, "ПРИВЕТ", "ПРИВЕТ"},
		{"SingleLetter", 2, "А", "А"},
		{"MixedCaseAndNoise", 3, "ПРИВЕТ мир", "ИТРРЕИПВМ"},
		{"RaggedLastRow", 4, "АБВГД", "ГВБАД"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			route, err := cipher.NewRoute(tc.cols)
			require.NoError(t, err)

			got, err := route.Encrypt(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRouteEncryptEmptyAfterFiltering(t *testing.T) {
	route, err := cipher.NewRoute(3)
	require.NoError(t, err)

	for _, text := range []string{"", "123!@#", "english only"} {
		_, err := route.Encrypt(text)
		assert.ErrorIs(t, err, cipher.ErrEmptyText, "Encrypt(%q)", text)
	}
}

func TestRouteDecrypt(t *testing.T) {
	route, err := cipher.NewRoute(3)
	require.NoError(t, err)

	got, err := route.Decrypt("ИТРРЕИПВМ")
	require.NoError(t, err)
	assert.Equal(t, "ПРИВЕТМИР", got)
}

func TestRouteDecryptRejectsDirtyInput(t *testing.T) {
	route, err := cipher.NewRoute(3)
	require.NoError(t, err)

	_, err = route.Decrypt("")
	assert.ErrorIs(t, err, cipher.ErrEmptyText)

	for _, text := range []string{"иТР", "ИТР1", "ИТ Р", "ИТР,", "ITP"} {
		_, err := route.Decrypt(text)
		assert.ErrorIs(t, err, cipher.ErrInvalidCipherText, "Decrypt(%q)", text)
	}
}

func TestRouteRoundTripAllColumnCounts(t *testing.T) {
	const text = "СЪЕШЬЖЕЕЩЁЭТИХМЯГКИХФРАНЦУЗСКИХБУЛОК"

	for cols := 1; cols <= cipher.MaxCols; cols++ {
		t.Run(fmt.Sprintf("Cols%d", cols), func(t *testing.T) {
			route, err := cipher.NewRoute(cols)
			require.NoError(t, err)

			enc, err := route.Encrypt(text)
			require.NoError(t, err)
			require.Len(t, []rune(enc), len([]rune(text)))

			dec, err := route.Decrypt(enc)
			require.NoError(t, err)
			assert.Equal(t, text, dec)
		})
	}
}

func TestRouteRoundTripRaggedGrids(t *testing.T) {
	// Lengths chosen to hit every n mod cols residue for a few column counts.
	letters := []rune("АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ")

	for _, cols := range []int{2, 3, 4, 7} {
		route, err := cipher.NewRoute(cols)
		require.NoError(t, err)

		for n := 1; n <= 2*cols+1; n++ {
			text := string(letters[:n%len(letters)+1])

			enc, err := route.Encrypt(text)
			require.NoError(t, err)

			dec, err := route.Decrypt(enc)
			require.NoError(t, err)
			assert.Equal(t, text, dec, "cols=%d n=%d", cols, n)
		}
	}
}

func TestRouteSingleColumnIdentityBothWays(t *testing.T) {
	route, err := cipher.NewRoute(1)
	require.NoError(t, err)

	enc, err := route.Encrypt("добрый вечер")
	require.NoError(t, err)
	assert.Equal(t, "ДОБРЫЙВЕЧЕР", enc)

	dec, err := route.Decrypt("ДОБРЫЙВЕЧЕР")
	require.NoError(t, err)
	assert.Equal(t, "ДОБРЫЙВЕЧЕР", dec)
}
