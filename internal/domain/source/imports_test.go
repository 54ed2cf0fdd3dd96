package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uiforge/uiforge/internal/domain/source"
)

func TestParseImports_Forms(t *testing.T) {
	content := `import React from 'react';
import { useState, useCallback } from 'react';
import Default, { named as alias } from "./widget";
import * as Icons from 'lucide-react';
import './styles.css';
import type { Props } from './types';
`
	stmts := source.ParseImports(content)
	require.Len(t, stmts, 6)

	assert.Equal(t, "react", stmts[0].Module)
	assert.Equal(t, "React", stmts[0].Default)
	assert.Empty(t, stmts[0].Named)

	assert.Equal(t, []string{"useState", "useCallback"}, stmts[1].Named)
	assert.Empty(t, stmts[1].Default)

	assert.Equal(t, "Default", stmts[2].Default)
	assert.Equal(t, []string{"named as alias"}, stmts[2].Named)
	assert.Equal(t, byte('"'), stmts[2].Quote)

	assert.Equal(t, "Icons", stmts[3].Namespace)

	assert.True(t, stmts[4].SideEffect)
	assert.Equal(t, "./styles.css", stmts[4].Module)

	assert.True(t, stmts[5].TypeOnly)
	assert.Equal(t, []string{"Props"}, stmts[5].Named)
}

func TestParseImports_Multiline(t *testing.T) {
	content := "import {\n  useState,\n  useEffect,\n} from 'react';\n"
	stmts := source.ParseImports(content)
	require.Len(t, stmts, 1)
	assert.Equal(t, []string{"useState", "useEffect"}, stmts[0].Named)
	assert.Equal(t, 1, stmts[0].Line)
}

func TestParseImports_IgnoresDynamicImport(t *testing.T) {
	content := "const mod = await import('./lazy');\n"
	assert.Empty(t, source.ParseImports(content))
}

func TestParseImports_LineNumbers(t *testing.T) {
	content := "// header\n\nimport React from 'react';\nconst x = 1;\nimport { z } from './z';\n"
	stmts := source.ParseImports(content)
	require.Len(t, stmts, 2)
	assert.Equal(t, 3, stmts[0].Line)
	assert.Equal(t, 5, stmts[1].Line)
}

func TestBindings_IncludesAliasesAndDefault(t *testing.T) {
	content := "import Def, { a, b as c } from 'mod';\n"
	stmts := source.ParseImports(content)
	require.Len(t, stmts, 1)
	assert.Equal(t, []string{"Def", "a", "c"}, stmts[0].Bindings())
}

func TestGroupByModule_PreservesFirstSeenOrder(t *testing.T) {
	content := `import { a } from 'b-mod';
import { x } from 'a-mod';
import { y } from 'b-mod';
`
	order, groups := source.GroupByModule(source.ParseImports(content))
	assert.Equal(t, []string{"b-mod", "a-mod"}, order)
	assert.Len(t, groups["b-mod"], 2)
	assert.Len(t, groups["a-mod"], 1)
}

func TestMergedStatement_CombinesNamedBindings(t *testing.T) {
	content := `import { useState } from 'react';
import { useCallback } from 'react';
`
	_, groups := source.GroupByModule(source.ParseImports(content))
	merged := source.MergedStatement(groups["react"])
	assert.Equal(t, "import { useState, useCallback } from 'react';", merged)
}

func TestMergedStatement_DefaultPlusNamed(t *testing.T) {
	content := `import React from 'react';
import { useState } from 'react';
`
	_, groups := source.GroupByModule(source.ParseImports(content))
	merged := source.MergedStatement(groups["react"])
	assert.Equal(t, "import React, { useState } from 'react';", merged)
}

func TestMergedStatement_DedupesBindings(t *testing.T) {
	content := `import { useState } from 'react';
import { useState, useEffect } from 'react';
`
	_, groups := source.GroupByModule(source.ParseImports(content))
	merged := source.MergedStatement(groups["react"])
	assert.Equal(t, "import { useState, useEffect } from 'react';", merged)
}

func TestMergedStatement_TypeOnlyGroup(t *testing.T) {
	content := `import type { A } from './types';
import type { B } from './types';
`
	_, groups := source.GroupByModule(source.ParseImports(content))
	merged := source.MergedStatement(groups["./types"])
	assert.Equal(t, "import type { A, B } from './types';", merged)
}
