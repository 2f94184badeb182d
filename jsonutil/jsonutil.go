// Copyright 2026 Sam Ains
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package jsonutil provides best-effort JSON file helpers on top of
// fileutil, built on the gjson/sjson document model: JSON travels as
// strings and paths select into it. Failures (missing files, malformed
// documents, wrong shapes) surface as zero values, never as errors.
package jsonutil

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/SamAins/tp-utils/fileutil"
)

// ReadJSONFile parses the file as a JSON document. A missing file or
// malformed document yields the zero gjson.Result, whose Exists method
// reports false.
func ReadJSONFile(fileName string) gjson.Result {
	text := fileutil.ReadTextFile(fileName)
	if text == "" || !gjson.Valid(text) {
		return gjson.Result{}
	}
	return gjson.Parse(text)
}

// WriteJSONFile validates and writes a JSON document to the file. A
// positive indent reformats with that many spaces per level; zero or
// negative writes the compact form. Reports success.
func WriteJSONFile(fileName, json string, indent int) bool {
	if !gjson.Valid(json) {
		return false
	}
	var out []byte
	if indent > 0 {
		out = pretty.PrettyOptions([]byte(json), &pretty.Options{
			Indent: strings.Repeat(" ", indent),
		})
	} else {
		out = pretty.Ugly([]byte(json))
	}
	return fileutil.WriteTextFile(fileName, string(out))
}

// WritePrettyJSONFile writes the document indented with two spaces per
// level.
func WritePrettyJSONFile(fileName, json string) bool {
	return WriteJSONFile(fileName, json, 2)
}

// SetJSONFileValue sets one value at a gjson-style path inside the file's
// document, read-modify-write. A missing or empty file starts from an empty
// document; a malformed existing document fails. Reports success.
func SetJSONFileValue(fileName, path string, value any) bool {
	doc := fileutil.ReadTextFile(fileName)
	if doc != "" && !gjson.Valid(doc) {
		return false
	}
	out, err := sjson.Set(doc, path, value)
	if err != nil {
		return false
	}
	return fileutil.WriteTextFile(fileName, out)
}

// StringList returns the string elements of the array at key, stopping at
// the first non-string element. A missing key or non-array value yields
// nil.
func StringList(json, key string) []string {
	value := gjson.Get(json, key)
	if !value.IsArray() {
		return nil
	}
	var result []string
	for _, item := range value.Array() {
		if item.Type != gjson.String {
			break
		}
		result = append(result, item.String())
	}
	return result
}

// Array returns the elements of the array at key. A missing key or
// non-array value yields nil.
func Array(json, key string) []gjson.Result {
	value := gjson.Get(json, key)
	if !value.IsArray() {
		return nil
	}
	return value.Array()
}
