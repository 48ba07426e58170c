/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package log_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/botobag/flatten/internal/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func decodeLines(buf *bytes.Buffer) []map[string]interface{} {
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		Expect(json.Unmarshal([]byte(line), &entry)).Should(Succeed())
		entries = append(entries, entry)
	}
	return entries
}

var _ = Describe("Logger", func() {
	It("parses level names", func() {
		Expect(log.ParseLevel("")).Should(Equal(zapcore.InfoLevel))
		Expect(log.ParseLevel("debug")).Should(Equal(zapcore.DebugLevel))
		Expect(log.ParseLevel("WARN")).Should(Equal(zapcore.WarnLevel))
		Expect(log.ParseLevel("error")).Should(Equal(zapcore.ErrorLevel))

		_, err := log.ParseLevel("loud")
		Expect(err).Should(MatchError(ContainSubstring(`invalid log level "loud"`)))
	})

	It("writes JSON lines at or above the configured level", func() {
		var buf bytes.Buffer
		logger, err := log.New("info", &buf)
		Expect(err).ShouldNot(HaveOccurred())

		logger.Debug("hidden")
		logger.Info("flattened", zap.Int("items", 7))
		logger.Error("failed", zap.Error(errors.New("broken")))
		Expect(logger.Sync()).Should(Succeed())

		entries := decodeLines(&buf)
		Expect(entries).Should(HaveLen(2))
		Expect(entries[0]).Should(HaveKeyWithValue("level", "info"))
		Expect(entries[0]).Should(HaveKeyWithValue("msg", "flattened"))
		Expect(entries[0]).Should(HaveKeyWithValue("items", BeNumerically("==", 7)))
		Expect(entries[0]).Should(HaveKey("ts"))
		Expect(entries[1]).Should(HaveKeyWithValue("level", "error"))
		Expect(entries[1]).Should(HaveKeyWithValue("error", "broken"))
	})

	It("includes debug entries at debug level", func() {
		var buf bytes.Buffer
		logger, err := log.New("debug", &buf)
		Expect(err).ShouldNot(HaveOccurred())

		logger.Debug("pulled")
		Expect(decodeLines(&buf)).Should(ConsistOf(HaveKeyWithValue("msg", "pulled")))
	})

	It("rejects unknown levels", func() {
		_, err := log.New("verbose", nil)
		Expect(err).Should(HaveOccurred())
	})

	It("provides a logger that discards everything", func() {
		Expect(log.Nop().Core().Enabled(zapcore.ErrorLevel)).Should(BeFalse())
	})
})
