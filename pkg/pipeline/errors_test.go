package pipeline

import (
	"errors"
	"fmt"
	"testing"
)

func TestCategoryOf(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"argument", ArgumentError("validate", base), CategoryArgument},
		{"input", InputError("probe", base), CategoryInput},
		{"resource", ResourceError("allocate", base), CategoryResource},
		{"encode", EncodeError("frame000.mpff", base), CategoryEncode},
		{"wrapped", fmt.Errorf("run: %w", InputError("probe", base)), CategoryInput},
		{"plain", base, CategoryUnknown},
		{"nil", nil, CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryOf(tt.err); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestError_UnwrapAndMessage(t *testing.T) {
	base := errors.New("file not found")
	err := InputError("read input", base)

	if !errors.Is(err, base) {
		t.Error("expected errors.Is to find the wrapped error")
	}
	if err.Error() != "read input: file not found" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if NewError(CategoryInput, "", base).Error() != "file not found" {
		t.Error("expected bare message without op")
	}
}

func TestCategory_ExitCodesAreDistinct(t *testing.T) {
	seen := map[int]Category{}
	for _, c := range []Category{CategoryUnknown, CategoryArgument, CategoryInput, CategoryResource, CategoryEncode} {
		code := c.ExitCode()
		if code == 0 {
			t.Errorf("%v maps to exit code 0", c)
		}
		if prev, ok := seen[code]; ok {
			t.Errorf("%v and %v share exit code %d", prev, c, code)
		}
		seen[code] = c
	}
}
