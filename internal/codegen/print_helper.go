package codegen

// printNumberHelper converts the signed 64-bit integer in rdi to
// decimal and writes it to stdout followed by a newline, one byte per
// write syscall.
//
// The buffer is built backward from a newline sentinel: digits are
// produced least-significant-first by repeated division and stored at
// increasing addresses, and a negative sign (if any) is appended after
// the last digit so that printing the buffer from its high end down to
// the sentinel yields the sign, then the digits most-significant-first,
// then the trailing newline.
const printNumberHelper = `print_number:
    push rbp
    mov rbp, rsp
    sub rsp, 32

    mov rax, rdi
    mov rcx, 10
    lea rsi, [rbp-32]
    mov BYTE PTR [rsi], 10
    inc rsi

    xor r8, r8
    test rax, rax
    jns .convert_digits
    neg rax
    mov r8, 1

.convert_digits:
    test rax, rax
    jnz .digit_loop
    mov BYTE PTR [rsi], 48
    inc rsi
    jmp .maybe_sign

.digit_loop:
    test rax, rax
    jz .maybe_sign
    xor rdx, rdx
    div rcx
    add dl, 48
    mov BYTE PTR [rsi], dl
    inc rsi
    jmp .digit_loop

.maybe_sign:
    test r8, r8
    jz .print_loop
    mov BYTE PTR [rsi], 45
    inc rsi

.print_loop:
    dec rsi
    mov rax, 1
    mov rdi, 1
    mov rdx, 1
    syscall
    cmp BYTE PTR [rsi], 10
    je .end_print
    jmp .print_loop

.end_print:
    mov rsp, rbp
    pop rbp
    ret`
