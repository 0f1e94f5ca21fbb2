package datasets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/foodsurveys/fsdb/pkg/errcode"
	"github.com/gnames/gn"
)

// UnknownVersion creates an error for a version code that is not
// in the catalog.
func UnknownVersion(id int) error {
	codes := make([]string, len(catalog))
	for i, v := range catalog {
		codes[i] = strconv.Itoa(v.ID)
	}

	msg := `Unknown dataset version code <em>%d</em>

<em>Supported codes:</em> %s

<em>How to fix:</em>
  1. Run <em>fsdb versions</em> to list supported releases
  2. Use the code of the release you want to import`

	vars := []any{id, strings.Join(codes, ", ")}

	return &gn.Error{
		Code: errcode.UnknownVersionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown version code %d", id),
	}
}
