package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func sinkDecl() classDecl {
	return classDecl{
		Name:       "AudioSinkIntf",
		Namespaces: []string{"media", "out"},
		SourceFile: "include/audio_sink_intf.h",
		Methods: []methodDecl{
			{
				Name:   "write",
				Return: "int",
				Params: []param{
					{Name: "data", Type: "const char*", Decl: "const char* data"},
					{Name: "n", Type: "int", Decl: "int n"},
				},
			},
			{Name: "flush", Return: "void", IsConst: true},
		},
	}
}

func TestBuildMockModel(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()

	t.Run("naming transforms", func(t *testing.T) {
		m := buildMockModel(ctx, sinkDecl(), cfg)
		require.Equal(t, "AudioSinkIntf", m.Interface)
		require.Equal(t, "AudioSinkMock", m.MockClass)
		require.Equal(t, "audio-sink-gmock.h", m.HeaderFile)
		require.Equal(t, "audio-sink-gmock.cpp", m.SourceFile)
		require.Equal(t, "AUDIO_SINK_GMOCK_H_", m.Guard)
		require.Equal(t, "audio_sink_intf.h", m.Include)
		require.Equal(t, []string{"media", "out"}, m.Namespaces)
	})

	t.Run("one entry per method", func(t *testing.T) {
		m := buildMockModel(ctx, sinkDecl(), cfg)
		require.Len(t, m.Entries, 2)
		require.Equal(t, mockMethodEntry{
			Macro:     "MOCK_METHOD2",
			Name:      "write",
			Signature: "int(const char* data, int n)",
		}, m.Entries[0])
		require.Equal(t, mockMethodEntry{
			Macro:     "MOCK_CONST_METHOD0",
			Name:      "flush",
			Signature: "void()",
		}, m.Entries[1])

		require.Equal(t, []string{
			"  MOCK_METHOD2(write, int(const char* data, int n));",
			"  MOCK_CONST_METHOD0(flush, void());",
		}, m.macroLines())
	})

	t.Run("nested interface keeps its qualifier", func(t *testing.T) {
		decl := sinkDecl()
		decl.Outer = []string{"Device"}
		m := buildMockModel(ctx, decl, cfg)
		require.Equal(t, "Device::AudioSinkIntf", m.Interface)
	})

	t.Run("operator entries wrap and forward by name", func(t *testing.T) {
		decl := classDecl{
			Name:       "Calc",
			SourceFile: "calc.h",
			Methods: []methodDecl{
				{
					Name:     "operator()",
					Return:   "int",
					IsConst:  true,
					Operator: operatorCall,
					Params: []param{
						{Name: "a", Type: "int", Decl: "int a"},
						{Name: "b", Type: "int", Decl: "int b"},
					},
				},
				{
					Name:     "operator<<",
					Return:   "void",
					Operator: operatorOther,
					Params:   []param{{Name: "s", Type: "const std::string&", Decl: "const std::string& s"}},
				},
			},
		}
		m := buildMockModel(ctx, decl, cfg)
		require.Len(t, m.Entries, 2)

		call := m.Entries[0]
		require.Equal(t, "call_operator", call.Name)
		require.Equal(t, "MOCK_CONST_METHOD2", call.Macro)
		require.Equal(t,
			"virtual int operator()(int a, int b) const { return call_operator(a, b); }",
			call.Wrapper)

		shift := m.Entries[1]
		require.Equal(t, "left_shift_operator", shift.Name)
		require.Equal(t,
			"virtual void operator<<(const std::string& s) { left_shift_operator(s); }",
			shift.Wrapper, "void wrappers must not return")

		lines := m.macroLines()
		require.Len(t, lines, 2, "a wrapped operator still occupies one line entry")
		require.Equal(t,
			"  virtual int operator()(int a, int b) const { return call_operator(a, b); }\n"+
				"  MOCK_CONST_METHOD2(call_operator, int(int a, int b));",
			lines[0])
	})

	t.Run("template classes parameterize every surface", func(t *testing.T) {
		decl := classDecl{
			Name:       "Buffer",
			SourceFile: "buffer.h",
			Template:   []templateParam{{Keyword: "typename", Name: "T"}, {Keyword: "int", Name: "N"}},
			Methods: []methodDecl{
				{Name: "at", Return: "T", IsConst: true, Params: []param{{Name: "i", Type: "int", Decl: "int i"}}},
			},
		}
		m := buildMockModel(ctx, decl, cfg)
		require.Equal(t, "template <typename T, int N>", m.TemplatePreamble)
		require.Equal(t, "<T, N>", m.TemplateArgs)
		require.Equal(t, "MOCK_CONST_METHOD1_T", m.Entries[0].Macro)

		data := m.renderData(cfg)
		require.Equal(t, "BufferMock<T, N>", data["template_class_name"])
		require.Equal(t, "Buffer<T, N>", data["template_interface"])
	})

	t.Run("declarator embedded names render inside the type", func(t *testing.T) {
		decl := classDecl{
			Name:       "CallbackIntf",
			SourceFile: "callback_intf.h",
			Methods: []methodDecl{
				{
					Name:   "set",
					Return: "void",
					Params: []param{{Name: "cb", Type: "void (*) (int, int)", Decl: "void (* cb) (int, int)"}},
				},
				{
					Name:   "fill",
					Return: "void",
					Params: []param{{Name: "buf", Type: "int [16]", Decl: "int buf [16]"}},
				},
			},
		}
		m := buildMockModel(ctx, decl, cfg)
		require.Equal(t, []string{
			"  MOCK_METHOD1(set, void(void (* cb) (int, int)));",
			"  MOCK_METHOD1(fill, void(int buf [16]));",
		}, m.macroLines())
	})

	t.Run("base classes surface in the render data", func(t *testing.T) {
		decl := sinkDecl()
		decl.Bases = []baseRef{{Name: "Closeable"}, {Name: "Stream<char>", SameFile: true}}
		data := buildMockModel(ctx, decl, cfg).renderData(cfg)
		require.Equal(t, []string{"Closeable", "Stream<char>"}, data["bases"])
	})

	t.Run("macro arity failures drop only the offending method", func(t *testing.T) {
		decl := sinkDecl()
		wide := methodDecl{Name: "wide", Return: "void", Params: make([]param, 11)}
		decl.Methods = append(decl.Methods, wide)
		m := buildMockModel(ctx, decl, cfg)
		require.Len(t, m.Entries, 2)
	})

	t.Run("render data carries the invocation", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Command = "gmockgen -f audio_sink_intf.h"
		cfg.Version = "1.2.3"
		data := buildMockModel(ctx, sinkDecl(), cfg).renderData(cfg)

		require.Equal(t, "AUDIO_SINK_GMOCK_H_", data["guard"])
		require.Equal(t, []string{"namespace media {", "namespace out {"}, data["namespaces_begin"])
		require.Equal(t, []string{"}  // namespace out", "}  // namespace media"}, data["namespaces_end"])
		require.Equal(t, "gmockgen -f audio_sink_intf.h", data["command"])
		require.Equal(t, "1.2.3", data["version"])
		require.Equal(t, "audio-sink-gmock.h", data["mock_file_hpp"])
		require.Equal(t, "audio-sink-gmock.cpp", data["mock_file_cpp"])
	})

	t.Run("building twice is deterministic", func(t *testing.T) {
		first := buildMockModel(ctx, sinkDecl(), cfg)
		second := buildMockModel(ctx, sinkDecl(), cfg)
		require.Equal(t, first, second)
	})
}
