package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return DefaultConfig()
}

func TestFormatter_Transform(t *testing.T) {
	tests := []struct {
		name   string
		cfg    func() Config
		input  string
		expect string
	}{
		{
			name: "third party and relative imports are grouped",
			cfg:  testConfig,
			input: `import { map } from 'rxjs/operators';
import { Component } from 'ui-kit';
import { Foo } from './foo';

export class Bar {}
`,
			expect: `//  Other imports
import { Component } from 'ui-kit';
import { map } from 'rxjs/operators';
//  Application imports
import { Foo } from './foo';

export class Bar {}
`,
		},
		{
			name:   "symbols are sorted",
			cfg:    testConfig,
			input:  `import { B, A, C } from 'x';`,
			expect: "//  Other imports\nimport { A, B, C } from 'x';",
		},
		{
			name: "long statement is wrapped",
			cfg: func() Config {
				cfg := testConfig()
				cfg.MaxLineLength = LineLength{Enabled: true, Limit: 40}
				return cfg
			},
			input: "import { Zeta, Alpha, Beta } from '@scope/some-long-module';\n",
			expect: `//  Other imports
import {
  Alpha,
  Beta,
  Zeta
} from '@scope/some-long-module';
`,
		},
		{
			name:   "file without imports is unchanged",
			cfg:    testConfig,
			input:  "export class A {}\nconst x = 1;\n",
			expect: "export class A {}\nconst x = 1;\n",
		},
		{
			name:   "empty file is unchanged",
			cfg:    testConfig,
			input:  "",
			expect: "",
		},
		{
			name:   "code before the first import disables grouping",
			cfg:    testConfig,
			input:  "'use strict';\nimport { b } from 'b';\n",
			expect: "'use strict';\nimport { b } from 'b';\n",
		},
		{
			name:   "separator is inserted before code",
			cfg:    testConfig,
			input:  "import a from 'a';\nconst x = 1;",
			expect: "//  Other imports\nimport a from 'a';\n\nconst x = 1;",
		},
		{
			name:   "crlf line endings are kept",
			cfg:    testConfig,
			input:  "import { B, A } from 'x';\r\n\r\nconst a = 1;\r\n",
			expect: "//  Other imports\r\nimport { A, B } from 'x';\r\n\r\nconst a = 1;\r\n",
		},
		{
			name: "angular group comes first",
			cfg:  testConfig,
			input: `import { HttpClient } from '@angular/common/http';
import { Observable } from 'rxjs';
import { Component, OnInit } from '@angular/core';
import { UserService } from '../services/user.service';

@Component({})
export class AppComponent {}
`,
			expect: `//  Angular imports
import { Component, OnInit } from '@angular/core';
import { HttpClient } from '@angular/common/http';
//  Other imports
import { Observable } from 'rxjs';
//  Application imports
import { UserService } from '../services/user.service';

@Component({})
export class AppComponent {}
`,
		},
		{
			name: "multi-line and from-clause exports",
			cfg:  testConfig,
			input: `export {
  OModule,
  AModule
} from './two';
export SModule from './one';
export { DModule } from './one';

export class SomeClass {
}
`,
			expect: `//  Application imports
export { AModule, OModule } from './two';
export { DModule } from './one';
export SModule from './one';

export class SomeClass {
}
`,
		},
		{
			name: "quotes are normalized",
			cfg: func() Config {
				cfg := testConfig()
				cfg.Quote = QuoteSingle
				return cfg
			},
			input:  "import { A } from \"x\";\n",
			expect: "//  Other imports\nimport { A } from 'x';\n",
		},
		{
			name:   "original quotes are kept without a preference",
			cfg:    testConfig,
			input:  "import { A } from \"./a\";\nimport { B } from 'b';\n",
			expect: "//  Other imports\nimport { B } from 'b';\n//  Application imports\nimport { A } from \"./a\";\n",
		},
		{
			name:   "statement without specifier goes to the default group",
			cfg:    testConfig,
			input:  "import { a } from './a';\nexport { b, a };\n",
			expect: "//  Other imports\nexport { a, b };\n//  Application imports\nimport { a } from './a';\n",
		},
		{
			name: "trailing comments inside a brace list",
			cfg:  testConfig,
			input: `import { // core
  Beta, // second
  Alpha
} from 'x'; // done
import { zed } from 'z';
import { car } from 'a';`,
			expect: `//  Other imports
// core
// second
// done
import { Alpha, Beta } from 'x';
import { car } from 'a';
import { zed } from 'z';`,
		},
		{
			name: "exact path alias does not match longer specifiers",
			cfg: func() Config {
				cfg := testConfig()
				cfg.PathAliases = map[string][]string{"@env": {"src/environments/environment"}}
				return cfg
			},
			input:  "import { x } from '@envoy/client';\nimport { environment } from '@env';\n",
			expect: "//  Other imports\nimport { x } from '@envoy/client';\n//  Application imports\nimport { environment } from '@env';\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result := Transform(tt.input, tt.cfg(), nil)
			req.Equal(tt.expect, result)
		})
	}
}

func TestFormatter_Transform_comments(t *testing.T) {
	t.Run("comment travels with its statement across groups", func(t *testing.T) {
		req := require.New(t)
		input := `// app comment
import { Foo } from './foo';
// lib comment
import { Bar } from 'bar';

const x = 1;
`
		expect := `//  Other imports
// lib comment
import { Bar } from 'bar';
//  Application imports
// app comment
import { Foo } from './foo';

const x = 1;
`
		req.Equal(expect, Transform(input, testConfig(), nil))
	})

	t.Run("comment separated by a blank line attaches to the following statement", func(t *testing.T) {
		req := require.New(t)
		input := `import { A } from 'a';
// shared

import { Z } from './z';
`
		expect := `//  Other imports
import { A } from 'a';
//  Application imports
// shared
import { Z } from './z';
`
		req.Equal(expect, Transform(input, testConfig(), nil))
	})

	t.Run("block comment is kept as one unit", func(t *testing.T) {
		req := require.New(t)
		input := `/*
 * License
 */
import { b } from 'b';
import { a } from 'a';
`
		expect := `//  Other imports
import { a } from 'a';
/*
 * License
 */
import { b } from 'b';
`
		req.Equal(expect, Transform(input, testConfig(), nil))
	})

	t.Run("comment inside a brace list stays with its statement", func(t *testing.T) {
		req := require.New(t)
		input := `import {
  // the only one
  Foo
} from 'foo';
import { Bar } from 'bar';
`
		expect := `//  Other imports
import { Bar } from 'bar';
// the only one
import { Foo } from 'foo';
`
		req.Equal(expect, Transform(input, testConfig(), nil))
	})

	t.Run("several comments keep their order", func(t *testing.T) {
		req := require.New(t)
		input := `import { Z } from 'z';
// first
// second
import { A } from 'a';
`
		expect := `//  Other imports
// first
// second
import { A } from 'a';
import { Z } from 'z';
`
		req.Equal(expect, Transform(input, testConfig(), nil))
	})
}

func TestFormatter_Transform_idempotent(t *testing.T) {
	inputs := map[string]string{
		"comments and groups": `// leading
import { map, filter } from 'rxjs/operators';
import { Component } from '@angular/core';
/*
 * block
 */
import { Helper } from './helper';
import * as lodash from 'lodash';

export class Foo {}
`,
		"crlf with wrapping": "import { Zeta, Alpha, Beta, Gamma, Delta } from '@scope/some-long-module';\r\nimport { b } from './b';\r\nfoo();\r\n",
		"multi-line export": `export {
  OModule,
  AModule
} from './two';
export SModule from './one';
`,
	}

	cfg := testConfig()
	cfg.MaxLineLength = LineLength{Enabled: true, Limit: 50}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			once := Transform(input, cfg, nil)
			twice := Transform(once, cfg, nil)
			req.Equal(once, twice)
		})
	}
}

func TestFormatter_Transform_bodyPreserved(t *testing.T) {
	req := require.New(t)
	body := "export class Foo {\n\timport = 'not an import';\n}\n\nimport('./lazy');\n"
	input := "import { b } from 'b';\nimport { a } from 'a';\n\n" + body
	result := Transform(input, testConfig(), nil)
	req.True(strings.HasSuffix(result, "\n\n"+body), "body changed: %q", result)
}

func TestFormatter_Transform_statementCount(t *testing.T) {
	req := require.New(t)
	input := `import { c } from 'c';
import { b } from './b';
import { HttpClient } from '@angular/common/http';
export * from './all';
import 'zone.js';
`
	result := Transform(input, testConfig(), nil)
	count := 0
	for _, line := range strings.Split(result, "\n") {
		if strings.HasPrefix(line, "import") || strings.HasPrefix(line, "export") {
			count++
		}
	}
	req.Equal(5, count)
}

func TestFormatter_Transform_unterminatedBrace(t *testing.T) {
	req := require.New(t)
	input := "import {\n  A,\n  B\nconst x = 1;"
	result := Transform(input, testConfig(), nil)
	req.True(strings.HasSuffix(result, "\n\nconst x = 1;"), "body changed: %q", result)
	req.Contains(result, "import { A, B")
}

func TestFormatter_Transform_customGroups(t *testing.T) {
	req := require.New(t)
	cfg := Config{
		Indent: "\t",
		Groups: []GroupDef{
			{Name: "node", Header: "Node imports", Builtin: true},
			{Name: "application", Header: "Local imports", Kind: ApplicationGroup},
			{Name: "framework", Header: "Framework imports", Patterns: []string{"@nestjs/**"}},
			{Name: "vendor", Header: "Vendor imports", Kind: DefaultGroup},
		},
		PathAliases: map[string][]string{"@app/*": {"src/app/*"}},
		Collation:   Collation{IgnoreCase: true, Numeric: true},
	}
	input := `import { Injectable } from '@nestjs/common';
import { readFile } from 'fs';
import { join } from 'node:path';
import { Config } from '@app/config';
import { Shared } from 'shared/util';
import { Boom } from 'boom';
import { x } from 'express';
`
	isApp := func(spec string) (bool, error) {
		switch spec {
		case "shared/util":
			return true, nil
		case "boom":
			return true, errors.New("stat failed")
		}
		return false, nil
	}
	expect := "//\tNode imports\n" +
		"import { join } from 'node:path';\n" +
		"import { readFile } from 'fs';\n" +
		"//\tLocal imports\n" +
		"import { Config } from '@app/config';\n" +
		"import { Shared } from 'shared/util';\n" +
		"//\tFramework imports\n" +
		"import { Injectable } from '@nestjs/common';\n" +
		"//\tVendor imports\n" +
		"import { Boom } from 'boom';\n" +
		"import { x } from 'express';\n"
	req.Equal(expect, Transform(input, cfg, isApp))
}

func TestFormatter_Transform_configNotModified(t *testing.T) {
	req := require.New(t)
	cfg := testConfig()
	Transform("import { a } from 'a';\n", cfg, nil)
	req.Equal(testConfig().Groups, cfg.Groups)
}

func TestFormatter_DetectEOL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"crlf", "a\r\nb", "\r\n"},
		{"lf", "a\nb", "\n"},
		{"cr", "a\rb", "\r"},
		{"mixed prefers crlf", "a\nb\r\nc", "\r\n"},
		{"single line", "a", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.want, DetectEOL(tt.input), "DetectEOL(%q)", tt.input)
		})
	}
}

func TestFormatter_Normalize(t *testing.T) {
	req := require.New(t)

	cfg := Config{}.Normalize()
	req.Equal(DefaultIndent, cfg.Indent)
	req.Len(cfg.Groups, 2)
	req.Equal(OtherGroupName, cfg.Groups[0].Name)
	req.Equal(DefaultGroup, cfg.Groups[0].Kind)
	req.Equal("Other imports", cfg.Groups[0].Header)
	req.Equal(ApplicationGroupName, cfg.Groups[1].Name)
	req.Equal("Application imports", cfg.Groups[1].Header)

	cfg = Config{
		MaxLineLength: LineLength{Enabled: true},
		Groups:        []GroupDef{{Name: "local", Kind: ApplicationGroup}},
	}.Normalize()
	req.False(cfg.MaxLineLength.Enabled, "a zero limit disables wrapping")
	req.Len(cfg.Groups, 2)
	req.Equal("Local imports", cfg.Groups[0].Header)
	req.Equal(DefaultGroup, cfg.Groups[1].Kind)
}
