// SPDX-License-Identifier: MIT

package all

import (
	// import to register the transports
	_ "github.com/ssbc/slz/transport/blob/test"
	_ "github.com/ssbc/slz/transport/conn/test"
	_ "github.com/ssbc/slz/transport/file/test"
	_ "github.com/ssbc/slz/transport/mem/test"
)
