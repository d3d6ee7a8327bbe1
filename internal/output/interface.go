// Copyright 2025 Starfetch HQ, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

// RecordWriter defines the interface for writing repository records.
// This abstraction keeps the command layer independent of the concrete
// output format (NDJSON today, others possible without touching callers).
type RecordWriter interface {
	// Write writes a single record to the output.
	Write(record interface{}) error

	// Count returns the number of records written so far.
	Count() int

	// Close closes the underlying writer and releases any resources.
	// This should be called when all writing is complete.
	Close() error
}
