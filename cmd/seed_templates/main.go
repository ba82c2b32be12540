// seed_templates genera el script SQL que puebla el catálogo de plantillas de
// obligaciones fiscales a partir del XML del calendario oficial (SFS Moldavia).
//
// Uso: go run ./cmd/seed_templates [ruta/calendar_fiscal.xml]
// Por defecto busca calendar_fiscal.xml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/003_seed_templates.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type calendar struct {
	Obligations []obligation `xml:"obligatie"`
}

type obligation struct {
	Cod        string `xml:"cod,attr"`
	Nume       string `xml:"nume,attr"`
	Frecventa  string `xml:"frecventa,attr"` // lunar | trimestrial | anual | saptamanal
	ZiScadenta int    `xml:"zi,attr"`
	Luna       int    `xml:"luna,attr"` // solo anual; 0 = sin mes
	TVA        bool   `xml:"tva,attr"`
	Angajati   bool   `xml:"angajati,attr"`
	Forme      string `xml:"forme,attr"` // formas jurídicas separadas por coma, vacío = todas
	Lege       string `xml:"lege,attr"`
	Descriere  string `xml:",chardata"`
}

// frequencyMap traduce la frecuencia del calendario al valor persistido.
var frequencyMap = map[string]string{
	"lunar":       "monthly",
	"trimestrial": "quarterly",
	"anual":       "annual",
	"saptamanal":  "weekly",
}

func main() {
	xmlPath := "calendar_fiscal.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var cal calendar
	dec := xml.NewDecoder(f)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		// El calendario se publica en ISO-8859-2 (alfabeto rumano legado)
		if strings.EqualFold(charset, "ISO-8859-2") || strings.EqualFold(charset, "ISO8859-2") {
			return transform.NewReader(input, charmap.ISO8859_2.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&cal); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "003_seed_templates.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de plantillas de obligaciones fiscales (Moldavia)\n")
	out.WriteString("-- Generado desde calendar_fiscal.xml (SFS)\n\n")

	count := 0
	for _, ob := range cal.Obligations {
		freq, ok := frequencyMap[strings.ToLower(strings.TrimSpace(ob.Frecventa))]
		if !ok || ob.Nume == "" || ob.ZiScadenta < 1 || ob.ZiScadenta > 31 {
			fmt.Fprintf(os.Stderr, "Omitida obligación %q: datos incompletos\n", ob.Cod)
			continue
		}

		month := "NULL"
		if freq == "annual" && ob.Luna >= 1 && ob.Luna <= 12 {
			month = fmt.Sprintf("%d", ob.Luna)
		}
		orgTypes := "'{}'"
		if forms := strings.TrimSpace(ob.Forme); forms != "" {
			parts := strings.Split(forms, ",")
			for i := range parts {
				parts[i] = `"` + strings.TrimSpace(parts[i]) + `"`
			}
			orgTypes = "'{" + strings.Join(parts, ",") + "}'"
		}

		fmt.Fprintf(out, "INSERT INTO task_templates (id, name, description, frequency, deadline_day, deadline_month,\n")
		fmt.Fprintf(out, "  applies_to_tva_payers, applies_to_employers, applies_to_org_types, reminder_days,\n")
		fmt.Fprintf(out, "  is_active, code, law_reference, notes, created_at, updated_at)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', %d, %s, %t, %t, %s, '{7,3,1}', true, '%s', '%s', '', now(), now())\n",
			uuid.New().String(),
			escapeSQL(ob.Nume),
			escapeSQL(strings.TrimSpace(ob.Descriere)),
			freq, ob.ZiScadenta, month,
			ob.TVA, ob.Angajati, orgTypes,
			escapeSQL(ob.Cod), escapeSQL(ob.Lege),
		)
		out.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, deadline_day = EXCLUDED.deadline_day, updated_at = now();\n\n")
		count++
	}

	fmt.Printf("Generado %s: %d plantillas\n", outPath, count)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
