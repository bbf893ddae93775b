package codegen

import (
	js "github.com/goliatone/go-formcode/pkg/jsast"
)

type importSpec struct {
	from      string
	namespace string
	names     []string
	// group separates package imports from project components with a blank
	// line.
	group int
}

// importTable lists every module the component may reference, in emission
// order. Only the names actually used by the tree are imported.
var importTable = []importSpec{
	{from: "@hookform/resolvers/zod", names: []string{"zodResolver"}},
	{from: "react-hook-form", names: []string{"useForm"}},
	{from: "zod", namespace: "z"},
	{from: "next/router", names: []string{"useRouter"}},
	{from: "date-fns", names: []string{"format"}},
	{from: "lucide-react", names: []string{"CalendarIcon", "CheckIcon", "ChevronsUpDown"}},

	{group: 1, from: "@/components/ui/button", names: []string{"Button"}},
	{group: 1, from: "@/components/ui/calendar", names: []string{"Calendar"}},
	{group: 1, from: "@/components/ui/card", names: []string{"Card", "CardContent", "CardDescription", "CardFooter", "CardHeader", "CardTitle"}},
	{group: 1, from: "@/components/ui/checkbox", names: []string{"Checkbox"}},
	{group: 1, from: "@/components/ui/command", names: []string{"Command", "CommandEmpty", "CommandGroup", "CommandInput", "CommandItem"}},
	{group: 1, from: "@/components/ui/form", names: []string{"Form", "FormControl", "FormDescription", "FormField", "FormItem", "FormLabel", "FormMessage"}},
	{group: 1, from: "@/components/ui/input", names: []string{"Input"}},
	{group: 1, from: "@/components/ui/popover", names: []string{"Popover", "PopoverContent", "PopoverTrigger"}},
	{group: 1, from: "@/components/ui/radio-group", names: []string{"RadioGroup", "RadioGroupItem"}},
	{group: 1, from: "@/components/ui/select", names: []string{"Select", "SelectContent", "SelectItem", "SelectTrigger", "SelectValue"}},
	{group: 1, from: "@/components/ui/textarea", names: []string{"Textarea"}},
	{group: 1, from: "@/lib/utils", names: []string{"cn"}},
}

// collectImports returns import statements for the identifiers and element
// names referenced anywhere in nodes.
func collectImports(nodes ...js.Node) []js.Stmt {
	used := make(map[string]struct{})
	for _, node := range nodes {
		for _, name := range js.Idents(node) {
			used[name] = struct{}{}
		}
		for _, name := range js.ElementNames(node) {
			used[name] = struct{}{}
		}
	}

	var out []js.Stmt
	lastGroup := -1
	for _, spec := range importTable {
		stmt := spec.resolve(used)
		if stmt == nil {
			continue
		}
		if lastGroup >= 0 && spec.group != lastGroup {
			out = append(out, &js.Blank{})
		}
		lastGroup = spec.group
		out = append(out, stmt)
	}
	return out
}

func (s importSpec) resolve(used map[string]struct{}) *js.Import {
	if s.namespace != "" {
		if _, ok := used[s.namespace]; !ok {
			return nil
		}
		return &js.Import{Namespace: s.namespace, From: s.from}
	}
	var names []string
	for _, name := range s.names {
		if _, ok := used[name]; ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return &js.Import{Names: names, From: s.from}
}
