/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dictionary

import "os"

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
