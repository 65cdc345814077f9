package commands

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func RegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register [path]",
		Short: "Regenerate the model registry file",
		Long:  `Scans the given path for Go files containing GORM models (structs embedding gorm.Model) and regenerates models_registry.go. Defaults to the property/models directory.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "property/models"
			if len(args) > 0 {
				path = args[0]
			}

			validatedPath, err := validateModelPath(path)
			if err != nil {
				return fmt.Errorf("failed to validate model path: %w", err)
			}

			registryFile, err := createModelRegistryFile(validatedPath)
			if err != nil {
				return fmt.Errorf("failed to create model registry file: %w", err)
			}

			fmt.Printf("Successfully generated model registry: %s\n", registryFile)
			return nil
		},
	}
}

func validateModelPath(path string) (string, error) {
	cleanPath := filepath.Clean(path)

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return "", fmt.Errorf("invalid model path: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	// A bare prefix check would accept sibling directories like
	// <wd>-evil; require the working directory itself or a child.
	if absPath != wd && !strings.HasPrefix(absPath, wd+string(os.PathSeparator)) {
		return "", fmt.Errorf("model path must be within working directory")
	}

	return absPath, nil
}

func createModelRegistryFile(dirPath string) (string, error) {
	filePath := filepath.Join(dirPath, "models_registry.go")

	packageName := filepath.Base(dirPath)
	allModels, err := collectModels(dirPath)
	if err != nil {
		return "", err
	}

	content := fmt.Sprintf(`package %s

var ModelTypeRegistry = map[string]interface{}{
%s}
`, packageName, allModels)

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to create model registry file: %w", err)
	}

	return filePath, nil
}

func collectModels(dirPath string) (string, error) {
	var allModels []string

	files, err := os.ReadDir(dirPath)
	if err != nil {
		return "", fmt.Errorf("failed to read directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".go") || file.Name() == "models_registry.go" {
			continue
		}
		if strings.HasSuffix(file.Name(), "_test.go") {
			continue
		}
		modelNames, err := parseModels(filepath.Join(dirPath, file.Name()))
		if err != nil {
			fmt.Printf("Warning: could not parse models from %s: %v\n", file.Name(), err)
			continue
		}
		allModels = append(allModels, modelNames...)
	}

	var contentBuilder strings.Builder
	for _, name := range allModels {
		contentBuilder.WriteString(fmt.Sprintf("\t%q: %s{},\n", name, name))
	}
	return contentBuilder.String(), nil
}

// parseModels returns the names of struct types embedding gorm.Model.
func parseModels(file string) ([]string, error) {
	var modelNames []string

	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, file, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	ast.Inspect(node, func(n ast.Node) bool {
		genDecl, ok := n.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			return true
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue
			}

			for _, field := range structType.Fields.List {
				if len(field.Names) != 0 {
					continue
				}
				if selExpr, ok := field.Type.(*ast.SelectorExpr); ok {
					if ident, ok := selExpr.X.(*ast.Ident); ok && ident.Name == "gorm" && selExpr.Sel.Name == "Model" {
						modelNames = append(modelNames, typeSpec.Name.Name)
						break
					}
				}
			}
		}
		return true
	})
	return modelNames, nil
}
