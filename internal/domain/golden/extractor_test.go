package golden_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uiforge/uiforge/internal/domain/golden"
)

func TestBuildExample_KeepsPathAndExcerpt(t *testing.T) {
	content := "import React from 'react';\n\nexport default function Badge() {\n  return <span>new</span>;\n}\n"

	ex, err := golden.BuildExample("src/components/Badge.tsx", content, 0)
	require.NoError(t, err)

	assert.Equal(t, "src/components/Badge.tsx", ex.Path)
	assert.Contains(t, ex.Excerpt, "export default function Badge()")
	assert.NotContains(t, ex.Excerpt, "// …", "short files carry no elision marker")
}

func TestBuildExample_EmptyContent(t *testing.T) {
	_, err := golden.BuildExample("src/components/Empty.tsx", "   \n\t\n", 60)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestExcerpt_CapsLinesAndMarksElision(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&b, "const line%d = %d;\n", i, i)
	}

	got := golden.Excerpt(b.String(), 10)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 11, "ten content lines plus the marker")
	assert.Equal(t, "const line0 = 0;", lines[0])
	assert.Equal(t, "const line9 = 9;", lines[9])
	assert.Equal(t, "// …", lines[10])
}

func TestExcerpt_CollapsesBlankRuns(t *testing.T) {
	content := "const a = 1;\n\n\n\nconst b = 2;\n"

	got := golden.Excerpt(content, 60)

	assert.Equal(t, "const a = 1;\n\nconst b = 2;", got)
}

func TestExcerpt_NormalizesCRLF(t *testing.T) {
	got := golden.Excerpt("const a = 1;\r\nconst b = 2;\r\n", 60)

	assert.NotContains(t, got, "\r")
	assert.Equal(t, "const a = 1;\nconst b = 2;", got)
}

func TestExcerpt_NoMarkerWhenOnlyBlanksRemain(t *testing.T) {
	content := "const a = 1;\nconst b = 2;\n\n\n\n"

	got := golden.Excerpt(content, 2)

	assert.Equal(t, "const a = 1;\nconst b = 2;", got,
		"trailing blank lines beyond the cap are not content worth marking")
}

func TestExampleBindings_DedupsAcrossStatements(t *testing.T) {
	content := `import React, { useState } from 'react';
import { useState, useEffect } from 'react';
import * as Icons from 'lucide-react';
import clsx from 'clsx';
import './styles.css';
`

	got := golden.ExampleBindings(content)

	assert.Equal(t, []string{"React", "useState", "useEffect", "Icons", "clsx"}, got)
}

func TestExampleBindings_AliasBindsTheAlias(t *testing.T) {
	got := golden.ExampleBindings("import { clsx as cx } from 'clsx';\n")

	assert.Equal(t, []string{"cx"}, got)
}

func TestExampleBindings_NoImports(t *testing.T) {
	got := golden.ExampleBindings("export const n = 1;\n")

	assert.Empty(t, got)
}
